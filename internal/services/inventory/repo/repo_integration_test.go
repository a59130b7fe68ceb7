//go:build integration_pg

package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lostfound/internal/platform/store"
	"lostfound/internal/services/inventory/domain"
	"lostfound/internal/services/inventory/repo"
	"lostfound/internal/services/inventory/service"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
create table found_items (
  id uuid primary key,
  name text not null,
  description text not null default '',
  category_id bigint,
  location_id bigint,
  location_label text,
  image_ref text,
  status text not null default 'available' check (status in ('available', 'pending', 'claimed')),
  found_at timestamptz not null default now()
);
create table lost_requests (
  id uuid primary key,
  owner_id text not null,
  owner_address text not null,
  name text not null,
  description text not null default '',
  category_id bigint,
  location_id bigint,
  status text not null default 'active' check (status in ('active', 'matched', 'cancelled', 'expired')),
  matched_item_id uuid references found_items(id),
  created_at timestamptz not null default now()
);`

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "lostfound",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/lostfound?sslmode=disable", host, port.Port())
}

func TestInventory_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "lostfound-inventory-it",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4, ConnectRetries: 10, PingTimeout: 3 * time.Second},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	svc := service.New(st.PG, repo.NewPG())
	cat := int64(4)
	base := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	names := []string{"White AirPods Pro", "Red umbrella", "100% cotton scarf", "Calculator"}
	for i, n := range names {
		at := base.Add(time.Duration(i) * time.Hour)
		in := domain.NewFoundItem{Name: n, Description: "found in hall", FoundAt: &at}
		if n == "Calculator" {
			in.CategoryID = &cat
		}
		if _, err := svc.CreateFoundItem(ctx, in); err != nil {
			t.Fatalf("create %q: %v", n, err)
		}
	}
	if _, err := st.PG.Exec(ctx, `update found_items set status = 'claimed' where name = 'Red umbrella'`); err != nil {
		t.Fatalf("claim: %v", err)
	}

	t.Run("token match is case insensitive and available only", func(t *testing.T) {
		xs, err := svc.Candidates(ctx, domain.CandidateQuery{Tokens: []string{"airpods", "umbrella"}})
		if err != nil {
			t.Fatalf("Candidates: %v", err)
		}
		if len(xs) != 1 || xs[0].Name != "White AirPods Pro" {
			t.Fatalf("candidates = %+v", xs)
		}
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		xs, err := svc.Candidates(ctx, domain.CandidateQuery{Tokens: []string{"100%"}})
		if err != nil || len(xs) != 1 || xs[0].Name != "100% cotton scarf" {
			t.Fatalf("candidates = %+v err = %v", xs, err)
		}
		xs, err = svc.Candidates(ctx, domain.CandidateQuery{Tokens: []string{"%"}})
		if err != nil || len(xs) != 1 {
			t.Fatalf("literal %% should only hit the scarf: %+v %v", xs, err)
		}
	})

	t.Run("category or tokens newest first", func(t *testing.T) {
		xs, err := svc.Candidates(ctx, domain.CandidateQuery{Tokens: []string{"airpods"}, CategoryID: &cat})
		if err != nil || len(xs) != 2 {
			t.Fatalf("candidates = %+v err = %v", xs, err)
		}
		if xs[0].Name != "Calculator" || xs[1].Name != "White AirPods Pro" {
			t.Fatalf("order = %q, %q", xs[0].Name, xs[1].Name)
		}
	})

	t.Run("search by first token", func(t *testing.T) {
		xs, err := svc.SearchAvailable(ctx, domain.ItemSearch{Token: "white"})
		if err != nil || len(xs) != 1 {
			t.Fatalf("search = %+v err = %v", xs, err)
		}
		all, err := svc.SearchAvailable(ctx, domain.ItemSearch{})
		if err != nil || len(all) != 3 {
			t.Fatalf("unfiltered search = %d err = %v", len(all), err)
		}
	})

	t.Run("active requests and lookups", func(t *testing.T) {
		lr, err := svc.CreateLostRequest(ctx, domain.NewLostRequest{
			OwnerID: "u1", OwnerAddress: "sam@example.edu", Name: "Navy blue backpack", CategoryID: &cat,
		})
		if err != nil {
			t.Fatalf("CreateLostRequest: %v", err)
		}
		active, err := svc.ActiveRequests(ctx)
		if err != nil || len(active) != 1 || active[0].ID != lr.ID {
			t.Fatalf("active = %+v err = %v", active, err)
		}
		got, err := svc.GetLostRequest(ctx, lr.ID)
		if err != nil || got.CategoryID == nil || *got.CategoryID != cat {
			t.Fatalf("GetLostRequest = %+v err = %v", got, err)
		}
	})
}
