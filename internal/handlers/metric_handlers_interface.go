package handlers

import "net/http"

type MeasureHandlers interface {
	UpsertMetricHandler(w http.ResponseWriter, r *http.Request)
	GetMetricHandler(w http.ResponseWriter, r *http.Request)
	UpdateHandlerJSON(w http.ResponseWriter, r *http.Request)
	BatchUpdateHandler(w http.ResponseWriter, r *http.Request)
	GetValueHandler(w http.ResponseWriter, r *http.Request)
	ColorHandler(w http.ResponseWriter, r *http.Request)
	BadgeHandler(w http.ResponseWriter, r *http.Request)
	RootHandler(w http.ResponseWriter, r *http.Request)
}
