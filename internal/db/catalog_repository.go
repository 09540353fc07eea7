package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/monbattle/internal/data"
)

// CatalogRepository хранит каталог видов и приёмов в PostgreSQL.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository создаёт новый CatalogRepository.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// LoadCatalog читает все определения и строит валидированный каталог.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*data.Catalog, error) {
	moves, species, err := r.LoadDefs(ctx)
	if err != nil {
		return nil, err
	}
	c, err := data.BuildCatalog(moves, species)
	if err != nil {
		return nil, fmt.Errorf("building catalog from database: %w", err)
	}
	slog.Info("loaded catalog", "source", "postgres", "species", c.SpeciesCount(), "moves", c.MoveCount())
	return c, nil
}

// LoadDefs читает сырые определения приёмов и видов (с learnset).
func (r *CatalogRepository) LoadDefs(ctx context.Context) ([]data.MoveDef, []data.SpeciesDef, error) {
	moves, err := r.loadMoves(ctx)
	if err != nil {
		return nil, nil, err
	}
	species, err := r.loadSpecies(ctx)
	if err != nil {
		return nil, nil, err
	}
	return moves, species, nil
}

func (r *CatalogRepository) loadMoves(ctx context.Context) ([]data.MoveDef, error) {
	query := `
		SELECT name, description, type, category, power, accuracy, always_hits,
		       pp, priority, target, effect, secondary
		FROM moves
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying moves: %w", err)
	}
	defer rows.Close()

	moves := make([]data.MoveDef, 0, 64)
	for rows.Next() {
		var m data.MoveDef
		if err := rows.Scan(
			&m.Name, &m.Description, &m.Type, &m.Category, &m.Power, &m.Accuracy, &m.AlwaysHits,
			&m.PP, &m.Priority, &m.Target, &m.Effect, &m.Secondary,
		); err != nil {
			return nil, fmt.Errorf("scanning move row: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating move rows: %w", err)
	}

	return moves, nil
}

func (r *CatalogRepository) loadSpecies(ctx context.Context) ([]data.SpeciesDef, error) {
	query := `
		SELECT id, name, description, type1, type2, hp, attack, defense, sp_attack, sp_defense,
		       speed, catch_rate, exp_base, growth_rate
		FROM species
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying species: %w", err)
	}
	defer rows.Close()

	species := make([]data.SpeciesDef, 0, 64)
	index := make(map[int32]int, 64)
	for rows.Next() {
		var s data.SpeciesDef
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Type1, &s.Type2,
			&s.Base.HP, &s.Base.Attack, &s.Base.Defense, &s.Base.SpAttack, &s.Base.SpDefense,
			&s.Base.Speed, &s.CatchRate, &s.ExpBase, &s.GrowthRate,
		); err != nil {
			return nil, fmt.Errorf("scanning species row: %w", err)
		}
		index[s.ID] = len(species)
		species = append(species, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating species rows: %w", err)
	}

	learnRows, err := r.db.Query(ctx, `SELECT species_id, move_name, level FROM learnsets ORDER BY species_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying learnsets: %w", err)
	}
	defer learnRows.Close()

	for learnRows.Next() {
		var (
			speciesID int32
			ld        data.LearnDef
		)
		if err := learnRows.Scan(&speciesID, &ld.Move, &ld.Level); err != nil {
			return nil, fmt.Errorf("scanning learnset row: %w", err)
		}
		i, ok := index[speciesID]
		if !ok {
			continue
		}
		species[i].Learnset = append(species[i].Learnset, ld)
	}
	if err := learnRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learnset rows: %w", err)
	}

	return species, nil
}

// SaveDefs сохраняет каталог (полная перезапись) в одной транзакции.
func (r *CatalogRepository) SaveDefs(ctx context.Context, moves []data.MoveDef, species []data.SpeciesDef) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	for _, stmt := range []string{`DELETE FROM learnsets`, `DELETE FROM species`, `DELETE FROM moves`} {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("clearing catalog: %w", err)
		}
	}

	for _, m := range moves {
		secondary := m.Secondary
		if secondary == nil {
			secondary = []data.SecondaryDef{}
		}
		target := m.Target
		if target == "" {
			target = "other"
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO moves (name, description, type, category, power, accuracy, always_hits, pp, priority, target, effect, secondary)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			m.Name, m.Description, m.Type, m.Category, m.Power, m.Accuracy, m.AlwaysHits,
			m.PP, m.Priority, target, m.Effect, secondary,
		); err != nil {
			return fmt.Errorf("inserting move %q: %w", m.Name, err)
		}
	}

	for _, s := range species {
		growth := s.GrowthRate
		if growth == "" {
			growth = "medium_fast"
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO species (id, name, description, type1, type2, hp, attack, defense, sp_attack, sp_defense,
			                      speed, catch_rate, exp_base, growth_rate)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			s.ID, s.Name, s.Description, s.Type1, s.Type2,
			s.Base.HP, s.Base.Attack, s.Base.Defense, s.Base.SpAttack, s.Base.SpDefense,
			s.Base.Speed, s.CatchRate, s.ExpBase, growth,
		); err != nil {
			return fmt.Errorf("inserting species %q: %w", s.Name, err)
		}
		// position хранит порядок из исходного каталога: MovesAtLevel берёт последние
		// приёмы, поэтому порядок внутри одного уровня должен совпадать с YAML.
		for i, ld := range s.Learnset {
			if _, err := tx.Exec(ctx,
				`INSERT INTO learnsets (species_id, move_name, level, position) VALUES ($1, $2, $3, $4)`,
				s.ID, ld.Move, ld.Level, i,
			); err != nil {
				return fmt.Errorf("inserting learnset %q/%q: %w", s.Name, ld.Move, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing catalog save: %w", err)
	}

	return nil
}
