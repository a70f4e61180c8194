package domain

import "time"

// Platform identifica a plataforma de e-commerce conectada
type Platform string

const (
	PlatformShopee    Platform = "shopee"
	PlatformShopify   Platform = "shopify"
	PlatformNuvemshop Platform = "nuvemshop"
	PlatformOlistTiny Platform = "olist_tiny"
)

// Platforms lista todas as plataformas suportadas
var Platforms = []Platform{
	PlatformShopee,
	PlatformShopify,
	PlatformNuvemshop,
	PlatformOlistTiny,
}

// ParsePlatform converte uma string em Platform
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// SyncStatus representa o estado do ciclo de vida de uma integração
type SyncStatus string

const (
	SyncStatusPendingOAuth SyncStatus = "pending_oauth"
	SyncStatusConnected    SyncStatus = "connected"
	SyncStatusError        SyncStatus = "error"
)

// Integration representa a conexão de um usuário com uma plataforma.
// Existe no máximo uma linha por par (user_id, platform); criada na primeira
// tentativa de conexão e atualizada pelo handshake e por cada sincronização.
type Integration struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Platform    Platform    `json:"platform"`
	Credentials Credentials `json:"-"`
	IsActive    bool        `json:"is_active"`
	SyncStatus  SyncStatus  `json:"sync_status"`
	LastSyncAt  *time.Time  `json:"last_sync_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IntegrationSummary é a visão da integração exposta pela API,
// sem o blob de credenciais
type IntegrationSummary struct {
	Platform   Platform   `json:"platform"`
	IsActive   bool       `json:"is_active"`
	SyncStatus SyncStatus `json:"sync_status"`
	LastSyncAt *time.Time `json:"last_sync_at"`
}

func (i *Integration) Summary() *IntegrationSummary {
	return &IntegrationSummary{
		Platform:   i.Platform,
		IsActive:   i.IsActive,
		SyncStatus: i.SyncStatus,
		LastSyncAt: i.LastSyncAt,
	}
}
