package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

// ConnectConfig holds the settings for the Connect REST transport.
type ConnectConfig struct {
	// Host is the Connect server base URL.
	Host string
	// Token is the bearer token authorising API calls.
	Token string
	// Timeout bounds each outbound request.
	Timeout time.Duration
}

type connectGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewConnectGateway constructs an HTTP/REST implementation of [ItemGateway]
// speaking to a Connect server. It normalises and validates the base URL and
// attaches the bearer token to every request.
//
// Returns an error if cfg.Host is empty or cannot be parsed as a valid URL.
func NewConnectGateway(cfg ConnectConfig, log *logger.Logger) (ItemGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid connect host: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json")

	return &connectGateway{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *connectGateway) GetItem(ctx context.Context, itemID, vaultID string) (models.Item, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/v1/vaults/" + vaultID + "/items/" + itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapStatusError("get", resp); err != nil {
		return models.Item{}, err
	}

	return decodeConnectItem(resp.Body())
}

func (g *connectGateway) EditItem(ctx context.Context, itemID, vaultID string, assignment FieldAssignment) (models.Item, error) {
	// Connect has no field-assignment syntax; read-modify-write the full
	// item instead.
	item, err := g.GetItem(ctx, itemID, vaultID)
	if err != nil {
		return models.Item{}, err
	}
	applyAssignment(&item, assignment)

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(toConnectItem(item)).
		Put("/v1/vaults/" + vaultID + "/items/" + itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("edit item request: %w", err)
	}
	if err = mapStatusError("edit", resp); err != nil {
		return models.Item{}, err
	}

	return decodeConnectItem(resp.Body())
}

func (g *connectGateway) CreateItem(ctx context.Context, title, vaultID string, category models.Category, fields []models.ItemField) (models.Item, error) {
	payload := connectItem{
		Title:    title,
		Category: string(category),
		Vault:    connectVaultRef{ID: vaultID},
	}
	for _, f := range fields {
		payload.Fields = append(payload.Fields, connectField{
			Type:    f.Type,
			Purpose: string(f.Purpose),
			Label:   f.Label,
			Value:   f.Value,
		})
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/v1/vaults/" + vaultID + "/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapStatusError("create", resp); err != nil {
		return models.Item{}, err
	}

	return decodeConnectItem(resp.Body())
}

func (g *connectGateway) DeleteItem(ctx context.Context, itemID, vaultID string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		Delete("/v1/vaults/" + vaultID + "/items/" + itemID)
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapStatusError("delete", resp)
}

func (g *connectGateway) ListItems(ctx context.Context, vaultID string) ([]models.ItemRef, error) {
	if vaultID != "" {
		return g.listVaultItems(ctx, vaultID)
	}

	vaults, err := g.ListVaults(ctx)
	if err != nil {
		return nil, err
	}

	var refs []models.ItemRef
	for _, v := range vaults {
		vaultRefs, err := g.listVaultItems(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, vaultRefs...)
	}
	return refs, nil
}

func (g *connectGateway) listVaultItems(ctx context.Context, vaultID string) ([]models.ItemRef, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/v1/vaults/" + vaultID + "/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapStatusError("list", resp); err != nil {
		return nil, err
	}

	var items []connectItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode item list: %w", err)
	}

	refs := make([]models.ItemRef, 0, len(items))
	for _, it := range items {
		refs = append(refs, models.ItemRef{
			ID:       it.ID,
			VaultID:  it.Vault.ID,
			Title:    it.Title,
			Category: models.Category(it.Category),
		})
	}
	return refs, nil
}

func (g *connectGateway) ListVaults(ctx context.Context) ([]models.Vault, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get("/v1/vaults")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapStatusError("vaults", resp); err != nil {
		return nil, err
	}

	var vaults []models.Vault
	if err = json.Unmarshal(resp.Body(), &vaults); err != nil {
		return nil, fmt.Errorf("decode vault list: %w", err)
	}
	return vaults, nil
}

// mapStatusError converts a non-2xx Connect response into a [*GatewayError]
// whose first line is the server's message, wrapping the sentinel matching
// the status code.
func mapStatusError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := connectErrorMessage(resp)
	gerr := &GatewayError{Op: op, Lines: []string{message}}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		gerr.err = ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		gerr.err = ErrUnauthorized
	case http.StatusNotFound:
		gerr.err = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		gerr.err = ErrUnavailable
	}

	return gerr
}

func connectErrorMessage(resp *resty.Response) string {
	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	text := strings.TrimSpace(string(resp.Body()))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return text
}

// connectItem mirrors the Connect wire format, which differs from the CLI
// JSON in vault reference shape and field naming.
type connectItem struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Vault    connectVaultRef `json:"vault"`
	Fields   []connectField  `json:"fields,omitempty"`
	Version  int             `json:"version,omitempty"`
}

type connectVaultRef struct {
	ID string `json:"id"`
}

type connectField struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	Label   string `json:"label,omitempty"`
	Value   string `json:"value,omitempty"`
}

func decodeConnectItem(body []byte) (models.Item, error) {
	var ci connectItem
	if err := json.Unmarshal(body, &ci); err != nil {
		return models.Item{}, fmt.Errorf("decode item: %w", err)
	}

	item := models.Item{
		ID:       ci.ID,
		Title:    ci.Title,
		Category: models.Category(ci.Category),
		Vault:    models.Vault{ID: ci.Vault.ID},
		Version:  ci.Version,
	}
	for _, f := range ci.Fields {
		item.Fields = append(item.Fields, models.ItemField{
			ID:      f.ID,
			Type:    f.Type,
			Purpose: models.FieldPurpose(f.Purpose),
			Label:   f.Label,
			Value:   f.Value,
		})
	}
	return item, nil
}

func toConnectItem(item models.Item) connectItem {
	ci := connectItem{
		ID:       item.ID,
		Title:    item.Title,
		Category: string(item.Category),
		Vault:    connectVaultRef{ID: item.Vault.ID},
		Version:  item.Version,
	}
	for _, f := range item.Fields {
		ci.Fields = append(ci.Fields, connectField{
			ID:      f.ID,
			Type:    f.Type,
			Purpose: string(f.Purpose),
			Label:   f.Label,
			Value:   f.Value,
		})
	}
	return ci
}

func applyAssignment(item *models.Item, assignment FieldAssignment) {
	if assignment.Field == "notesPlain" {
		if f := item.NoteField(); f != nil {
			f.Value = assignment.Value
			return
		}
		item.Fields = append(item.Fields, models.ItemField{
			Type:    "STRING",
			Purpose: models.PurposeNotes,
			Label:   "notesPlain",
			Value:   assignment.Value,
		})
		return
	}

	if f := item.FieldByLabel(assignment.Field); f != nil {
		f.Value = assignment.Value
		return
	}
	item.Fields = append(item.Fields, models.ItemField{
		Type:  "STRING",
		Label: assignment.Field,
		Value: assignment.Value,
	})
}
