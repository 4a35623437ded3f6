package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

type cliGateway struct {
	invoker Invoker
	logger  *logger.Logger
}

// NewCLIGateway constructs an [ItemGateway] backed by the op command-line
// tool. All operations request JSON output and parse it into the shared
// models; error lines from the tool are wrapped in [*GatewayError] verbatim.
func NewCLIGateway(invoker Invoker, log *logger.Logger) interface {
	ItemGateway
	AccountGateway
} {
	return &cliGateway{invoker: invoker, logger: log}
}

func (g *cliGateway) GetItem(ctx context.Context, itemID, vaultID string) (models.Item, error) {
	out, err := g.invoker.Invoke(ctx, "item", "get", itemID, "--vault", vaultID, "--format", "json")
	if err != nil {
		return models.Item{}, fmt.Errorf("get item: %w", err)
	}
	if out.Failed() {
		return models.Item{}, NewGatewayError("get", out.ErrorLines)
	}

	return parseItem(out.ResultLines)
}

func (g *cliGateway) EditItem(ctx context.Context, itemID, vaultID string, assignment FieldAssignment) (models.Item, error) {
	args := []string{
		"item", "edit", itemID,
		"--vault", vaultID,
		assignment.Field + "=" + assignment.Value,
		"--format", "json",
	}
	out, err := g.invoker.Invoke(ctx, args...)
	if err != nil {
		return models.Item{}, fmt.Errorf("edit item: %w", err)
	}
	if out.Failed() {
		return models.Item{}, NewGatewayError("edit", out.ErrorLines)
	}

	return parseItem(out.ResultLines)
}

func (g *cliGateway) CreateItem(ctx context.Context, title, vaultID string, category models.Category, fields []models.ItemField) (models.Item, error) {
	args := []string{
		"item", "create",
		"--category", categoryArg(category),
		"--title", title,
		"--vault", vaultID,
		"--format", "json",
	}
	for _, f := range fields {
		args = append(args, f.Label+"="+f.Value)
	}

	out, err := g.invoker.Invoke(ctx, args...)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	if out.Failed() {
		return models.Item{}, NewGatewayError("create", out.ErrorLines)
	}

	return parseItem(out.ResultLines)
}

func (g *cliGateway) DeleteItem(ctx context.Context, itemID, vaultID string) error {
	out, err := g.invoker.Invoke(ctx, "item", "delete", itemID, "--vault", vaultID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if out.Failed() {
		return NewGatewayError("delete", out.ErrorLines)
	}

	return nil
}

func (g *cliGateway) ListItems(ctx context.Context, vaultID string) ([]models.ItemRef, error) {
	args := []string{"item", "list", "--format", "json"}
	if vaultID != "" {
		args = append(args, "--vault", vaultID)
	}

	out, err := g.invoker.Invoke(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if out.Failed() {
		return nil, NewGatewayError("list", out.ErrorLines)
	}
	if len(out.ResultLines) == 0 {
		return nil, nil
	}

	var items []models.Item
	if err = json.Unmarshal(joinLines(out.ResultLines), &items); err != nil {
		return nil, fmt.Errorf("decode item list: %w", err)
	}

	refs := make([]models.ItemRef, 0, len(items))
	for _, it := range items {
		refs = append(refs, models.ItemRef{
			ID:       it.ID,
			VaultID:  it.Vault.ID,
			Title:    it.Title,
			Category: it.Category,
		})
	}
	return refs, nil
}

func (g *cliGateway) ListVaults(ctx context.Context) ([]models.Vault, error) {
	out, err := g.invoker.Invoke(ctx, "vault", "list", "--format", "json")
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}
	if out.Failed() {
		return nil, NewGatewayError("vaults", out.ErrorLines)
	}
	if len(out.ResultLines) == 0 {
		return nil, nil
	}

	var vaults []models.Vault
	if err = json.Unmarshal(joinLines(out.ResultLines), &vaults); err != nil {
		return nil, fmt.Errorf("decode vault list: %w", err)
	}
	return vaults, nil
}

func (g *cliGateway) Whoami(ctx context.Context) (string, error) {
	out, err := g.invoker.Invoke(ctx, "whoami", "--format", "json")
	if err != nil {
		return "", fmt.Errorf("whoami: %w", err)
	}
	if out.Failed() {
		return "", NewGatewayError("whoami", out.ErrorLines)
	}

	var account struct {
		Email string `json:"email"`
		URL   string `json:"url"`
	}
	if err = json.Unmarshal(joinLines(out.ResultLines), &account); err != nil {
		return "", fmt.Errorf("decode whoami: %w", err)
	}
	if account.Email != "" {
		return account.Email, nil
	}
	return account.URL, nil
}

func parseItem(resultLines []string) (models.Item, error) {
	var item models.Item
	if err := json.Unmarshal(joinLines(resultLines), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}

func joinLines(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

func categoryArg(category models.Category) string {
	switch category {
	case models.SecureNote:
		return "Secure Note"
	case models.Login:
		return "Login"
	default:
		return string(category)
	}
}
