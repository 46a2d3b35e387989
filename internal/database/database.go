package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"myblog/internal/config"
)

const migrationsDir = "migrations"

type DB struct {
	*sqlx.DB
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.DbHOST,
		cfg.DB.DbPORT,
		cfg.DB.DbUSER,
		cfg.DB.DbPASSWORD,
		cfg.DB.DbNAME,
		cfg.DB.DbSSLMODE,
	)

	log.Printf("Подключение к PostgreSQL: host=%s dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	// sqlx.Connect уже делает Ping
	sqlxDB, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	sqlxDB.SetMaxOpenConns(25)
	sqlxDB.SetMaxIdleConns(5)
	sqlxDB.SetConnMaxLifetime(30 * time.Minute)

	db := &DB{sqlxDB}

	if err := db.RunMigrations(migrationsDir); err != nil {
		log.Printf("Внимание: миграции не применены: %v", err)
	}

	log.Println("БД готова к работе")
	return db, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations выполняет все *.sql файлы каталога в лексикографическом
// порядке, поэтому файлы нумеруются префиксом 001_, 002_ и так далее
func (db *DB) RunMigrations(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("ошибка поиска файлов миграций: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("в каталоге %s нет файлов миграций", dir)
	}

	sort.Strings(files)

	for _, file := range files {
		migrationSQL, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("ошибка чтения миграции %s: %w", file, err)
		}

		if _, err := db.Exec(string(migrationSQL)); err != nil {
			return fmt.Errorf("ошибка выполнения миграции %s: %w", file, err)
		}

		log.Printf("Миграция применена: %s", file)
	}

	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}
	return db.Ping()
}
