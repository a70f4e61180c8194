package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnknownPlatform indica uma plataforma não suportada
	ErrUnknownPlatform = errors.New("plataforma desconhecida")
	// ErrInvalidCredentials indica um blob de credenciais com campos obrigatórios ausentes
	ErrInvalidCredentials = errors.New("credenciais inválidas para a plataforma")
)

// Credentials é a união etiquetada dos blobs de credenciais por plataforma.
// Um blob é "pré-handshake" (sem access token, integração inativa) ou
// "conectado" (access token presente); nenhum outro estado é válido.
type Credentials interface {
	CredentialPlatform() Platform
	// Connected informa se o blob já carrega um token de acesso utilizável
	Connected() bool
	// Validate verifica o conjunto de campos obrigatórios da plataforma
	Validate() error
}

// ShopeeCredentials carrega o resultado do token/get da Shopee
type ShopeeCredentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ShopID       int64     `json:"shop_id"`
	ExpireIn     int64     `json:"expire_in"`
	ObtainedAt   time.Time `json:"obtained_at"`
}

func (c *ShopeeCredentials) CredentialPlatform() Platform { return PlatformShopee }

func (c *ShopeeCredentials) Connected() bool { return c.AccessToken != "" }

func (c *ShopeeCredentials) Validate() error {
	if !c.Connected() {
		// Pré-handshake a Shopee não guarda nada além do shop_id opcional
		return nil
	}
	if c.RefreshToken == "" || c.ShopID == 0 {
		return errors.Wrap(ErrInvalidCredentials, "shopee: refresh_token e shop_id são obrigatórios")
	}
	return nil
}

// Expired informa se o token de acesso já passou da validade informada pela Shopee
func (c *ShopeeCredentials) Expired(now time.Time) bool {
	if c.ExpireIn == 0 || c.ObtainedAt.IsZero() {
		return false
	}
	return now.After(c.ObtainedAt.Add(time.Duration(c.ExpireIn) * time.Second))
}

// ShopifyCredentials carrega as credenciais do app privado informadas pelo
// usuário e, após o callback, o token de acesso
type ShopifyCredentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	ShopDomain   string `json:"shop_domain"`
	AccessToken  string `json:"access_token,omitempty"`
	StoreURL     string `json:"store_url,omitempty"`
}

func (c *ShopifyCredentials) CredentialPlatform() Platform { return PlatformShopify }

func (c *ShopifyCredentials) Connected() bool { return c.AccessToken != "" }

func (c *ShopifyCredentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.ShopDomain == "" {
		return errors.Wrap(ErrInvalidCredentials, "shopify: client_id, client_secret e shop_domain são obrigatórios")
	}
	return nil
}

// NuvemshopCredentials carrega o token e o identificador da loja na Nuvemshop
type NuvemshopCredentials struct {
	AccessToken string `json:"access_token,omitempty"`
	StoreID     int64  `json:"store_id,omitempty"`
}

func (c *NuvemshopCredentials) CredentialPlatform() Platform { return PlatformNuvemshop }

func (c *NuvemshopCredentials) Connected() bool { return c.AccessToken != "" }

func (c *NuvemshopCredentials) Validate() error {
	if c.Connected() && c.StoreID == 0 {
		return errors.Wrap(ErrInvalidCredentials, "nuvemshop: store_id é obrigatório após o handshake")
	}
	return nil
}

// TinyCredentials carrega o token de API do Olist/Tiny informado pelo usuário
type TinyCredentials struct {
	APIToken string `json:"api_token"`
}

func (c *TinyCredentials) CredentialPlatform() Platform { return PlatformOlistTiny }

func (c *TinyCredentials) Connected() bool { return c.APIToken != "" }

func (c *TinyCredentials) Validate() error {
	if c.APIToken == "" {
		return errors.Wrap(ErrInvalidCredentials, "olist_tiny: api_token é obrigatório")
	}
	return nil
}

// EncodeCredentials serializa o blob de credenciais para persistência
func EncodeCredentials(c Credentials) ([]byte, error) {
	if c == nil {
		return nil, errors.New("credenciais nulas")
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar credenciais")
	}
	return raw, nil
}

// DecodeCredentials desserializa o blob de acordo com a plataforma e valida
// o conjunto de campos obrigatórios
func DecodeCredentials(platform Platform, raw []byte) (Credentials, error) {
	var creds Credentials

	switch platform {
	case PlatformShopee:
		creds = &ShopeeCredentials{}
	case PlatformShopify:
		creds = &ShopifyCredentials{}
	case PlatformNuvemshop:
		creds = &NuvemshopCredentials{}
	case PlatformOlistTiny:
		creds = &TinyCredentials{}
	default:
		return nil, errors.Wrapf(ErrUnknownPlatform, "%s", platform)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, creds); err != nil {
			return nil, errors.Wrapf(ErrInvalidCredentials, "erro ao desserializar blob de %s: %v", platform, err)
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return creds, nil
}
