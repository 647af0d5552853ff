package domain

import "time"

// RolePermissions is the per-role feature-flag matrix consumed by the
// frontend to show or hide application areas. It is reference data, not an
// enforcement mechanism; route-level authorization stays role-based.
type RolePermissions struct {
	Role      Role
	Features  map[string]bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeatureKeys lists every known feature flag, matching the frontend's
// navigation areas.
var FeatureKeys = []string{
	"dashboard",
	"notificacoes",
	"tarefas",
	"ponto",
	"mural",
	"calendario",
	"clientes",
	"chat",
	"documentos",
	"feedbacks",
	"solicitacoes",
	"configuracoes",
	"beneficios",
	"performance",
	"colaboradores",
	"folha_pagamento",
	"folha_clientes",
	"avaliacoes",
	"okrs",
	"relatorios",
}
