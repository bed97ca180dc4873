package handlers

import (
	"fmt"
	"net/http"

	"github.com/GarikMirzoyan/measurecolor/internal/database"
)

type DBBaseHandler struct {
	DBConn database.DBConn
}

func NewDBBaseHandlers(DBConn database.DBConn) *DBBaseHandler {
	return &DBBaseHandler{DBConn: DBConn}
}

func (h *DBBaseHandler) PingDBHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DBConn.Ping(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Произошла ошибка: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
