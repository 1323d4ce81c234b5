// Package handlers exposes the presentation-facing HTTP API.
package handlers

import (
	"almacen-pos/internal/ai"
	"almacen-pos/internal/alerts"
	"almacen-pos/internal/catalog"
	"almacen-pos/internal/ledger"
)

// Handler bundles the stores every route needs. No package globals: the
// server wires one of these at boot and registers its methods.
type Handler struct {
	Catalog *catalog.Store
	Ledger  *ledger.Ledger
	Alerts  *alerts.Classifier
	Gateway *ai.Gateway // nil when no API key is configured
}

// New builds the handler set.
func New(cat *catalog.Store, led *ledger.Ledger, cls *alerts.Classifier, gw *ai.Gateway) *Handler {
	return &Handler{Catalog: cat, Ledger: led, Alerts: cls, Gateway: gw}
}
