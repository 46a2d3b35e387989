package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int      `json:"countTables"`
	Tables      []string `json:"tables"`
	Missing     []string `json:"missing,omitempty"`
}

// TablesHandler - диагностика схемы: какие таблицы есть и каких не хватает
func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.TablesService.SchemaStatus(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, TablesResponse{
		CountTables: len(status.Tables),
		Tables:      status.Tables,
		Missing:     status.Missing,
	}, http.StatusOK)
}
