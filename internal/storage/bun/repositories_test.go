package bunrepo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/goliatone/go-blocks/pkg/domain"
	"github.com/goliatone/go-blocks/pkg/interfaces/store"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.DriverName(), "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("sql open: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	models := []any{
		(*domain.BlockDefinition)(nil),
		(*domain.BlockTemplate)(nil),
	}
	for _, model := range models {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		if err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

func TestDefinitionRepositoryBun(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewDefinitionRepository(db)
	ctx := context.Background()

	def := &domain.BlockDefinition{
		Code:  "quote",
		Name:  "Quote",
		Kind:  domain.KindBasic,
		Group: "content",
	}
	if err := repo.Create(ctx, def); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByCode(ctx, "quote")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if got.Code != "quote" {
		t.Fatalf("unexpected code %s", got.Code)
	}

	got.Description = "Quote with attribution"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := repo.List(ctx, store.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected total 1, got %d", list.Total)
	}
}

func TestTemplateRepositoryBun(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTemplateRepository(db)
	ctx := context.Background()

	for _, locale := range []string{"fr", "en"} {
		tpl := &domain.BlockTemplate{
			Code:   "card",
			Locale: locale,
			Format: domain.FormatHTML,
			Body:   `<div class="fr-card"></div>`,
		}
		if err := repo.Create(ctx, tpl); err != nil {
			t.Fatalf("create %s: %v", locale, err)
		}
	}

	got, err := repo.GetByCodeAndLocale(ctx, "CARD", "FR")
	if err != nil {
		t.Fatalf("get by code+locale: %v", err)
	}
	if got.Locale != "fr" {
		t.Fatalf("expected fr variant, got %s", got.Locale)
	}

	variants, err := repo.ListByCode(ctx, "card", store.ListOptions{})
	if err != nil {
		t.Fatalf("list by code: %v", err)
	}
	if variants.Total != 2 {
		t.Fatalf("expected 2 variants, got %d", variants.Total)
	}
}
