package data

import (
	"fmt"
	"slices"

	"github.com/udisondev/monbattle/internal/model"
)

// MoveDef is the serialized form of a move template.
type MoveDef struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Type        string         `yaml:"type"`
	Category    string         `yaml:"category"`
	Power       int            `yaml:"power"`
	Accuracy    int            `yaml:"accuracy"`
	AlwaysHits  bool           `yaml:"always_hits"`
	PP          int            `yaml:"pp"`
	Priority    int            `yaml:"priority"`
	Target      string         `yaml:"target"`
	Effect      EffectDef      `yaml:"effect"`
	Secondary   []SecondaryDef `yaml:"secondary"`
}

// EffectDef is the serialized form of a move effect.
type EffectDef struct {
	Boosts []BoostDef `yaml:"boosts" json:"boosts,omitempty"`
	Status string     `yaml:"status" json:"status,omitempty"`
}

// BoostDef is the serialized form of a stat boost.
type BoostDef struct {
	Stat  string `yaml:"stat" json:"stat"`
	Delta int    `yaml:"delta" json:"delta"`
}

// SecondaryDef is the serialized form of a chance-gated effect.
type SecondaryDef struct {
	Chance int       `yaml:"chance" json:"chance"`
	Target string    `yaml:"target" json:"target,omitempty"`
	Effect EffectDef `yaml:"effect" json:"effect"`
}

// SpeciesDef is the serialized form of a species.
type SpeciesDef struct {
	ID          int32        `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Type1       string       `yaml:"type1"`
	Type2       string       `yaml:"type2"`
	Base        BaseStatsDef `yaml:"base"`
	CatchRate   int          `yaml:"catch_rate"`
	ExpBase     int          `yaml:"exp_base"`
	GrowthRate  string       `yaml:"growth_rate"`
	Learnset    []LearnDef   `yaml:"learnset"`
}

// BaseStatsDef is the serialized form of base stats.
type BaseStatsDef struct {
	HP        int `yaml:"hp"`
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"sp_attack"`
	SpDefense int `yaml:"sp_defense"`
	Speed     int `yaml:"speed"`
}

// LearnDef is one learnset entry referencing a move by name.
type LearnDef struct {
	Move  string `yaml:"move"`
	Level int    `yaml:"level"`
}

func (d *MoveDef) toTemplate() (*model.MoveTemplate, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: move without name", ErrInvalidCatalog)
	}
	et, ok := model.ParseElementType(d.Type)
	if !ok || et == model.TypeNone {
		return nil, fmt.Errorf("%w: move %q has unknown type %q", ErrInvalidCatalog, d.Name, d.Type)
	}
	cat, ok := model.ParseMoveCategory(d.Category)
	if !ok {
		return nil, fmt.Errorf("%w: move %q has unknown category %q", ErrInvalidCatalog, d.Name, d.Category)
	}
	target, ok := model.ParseMoveTarget(d.Target)
	if !ok {
		return nil, fmt.Errorf("%w: move %q has unknown target %q", ErrInvalidCatalog, d.Name, d.Target)
	}
	if d.PP <= 0 {
		return nil, fmt.Errorf("%w: move %q has pp %d", ErrInvalidCatalog, d.Name, d.PP)
	}
	if cat != model.CategoryStats && d.Power <= 0 {
		return nil, fmt.Errorf("%w: damaging move %q has power %d", ErrInvalidCatalog, d.Name, d.Power)
	}

	effect, err := d.Effect.toEffect(d.Name)
	if err != nil {
		return nil, err
	}

	secondary := make([]model.SecondaryEffect, 0, len(d.Secondary))
	for _, sd := range d.Secondary {
		if sd.Chance < 0 || sd.Chance > 100 {
			return nil, fmt.Errorf("%w: move %q secondary chance %d", ErrInvalidCatalog, d.Name, sd.Chance)
		}
		st, ok := model.ParseMoveTarget(sd.Target)
		if !ok {
			return nil, fmt.Errorf("%w: move %q secondary target %q", ErrInvalidCatalog, d.Name, sd.Target)
		}
		se, err := sd.Effect.toEffect(d.Name)
		if err != nil {
			return nil, err
		}
		secondary = append(secondary, model.SecondaryEffect{Chance: sd.Chance, Target: st, Effect: se})
	}

	return &model.MoveTemplate{
		Name:        d.Name,
		Description: d.Description,
		Type:        et,
		Category:    cat,
		Power:       d.Power,
		Accuracy:    d.Accuracy,
		AlwaysHits:  d.AlwaysHits,
		PP:          d.PP,
		Priority:    d.Priority,
		Effect:      effect,
		Secondary:   secondary,
		Target:      target,
	}, nil
}

func (d EffectDef) toEffect(moveName string) (model.MoveEffect, error) {
	status, ok := model.ParseStatusID(d.Status)
	if !ok {
		return model.MoveEffect{}, fmt.Errorf("%w: move %q has unknown status %q", ErrInvalidCatalog, moveName, d.Status)
	}
	var boosts []model.StatBoost
	for _, b := range d.Boosts {
		stat, ok := model.ParseStat(b.Stat)
		if !ok {
			return model.MoveEffect{}, fmt.Errorf("%w: move %q boosts unknown stat %q", ErrInvalidCatalog, moveName, b.Stat)
		}
		boosts = append(boosts, model.StatBoost{Stat: stat, Delta: b.Delta})
	}
	return model.MoveEffect{Boosts: boosts, Status: status}, nil
}

func (d *SpeciesDef) toSpecies(c *Catalog) (*model.Species, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: species %d without name", ErrInvalidCatalog, d.ID)
	}
	t1, ok := model.ParseElementType(d.Type1)
	if !ok || t1 == model.TypeNone {
		return nil, fmt.Errorf("%w: species %q has unknown type1 %q", ErrInvalidCatalog, d.Name, d.Type1)
	}
	t2, ok := model.ParseElementType(d.Type2)
	if !ok {
		return nil, fmt.Errorf("%w: species %q has unknown type2 %q", ErrInvalidCatalog, d.Name, d.Type2)
	}
	growth, ok := model.ParseGrowthRate(d.GrowthRate)
	if !ok {
		return nil, fmt.Errorf("%w: species %q has unknown growth rate %q", ErrInvalidCatalog, d.Name, d.GrowthRate)
	}

	learnset := make([]model.LearnableMove, 0, len(d.Learnset))
	for _, ld := range d.Learnset {
		mt, ok := c.Move(ld.Move)
		if !ok {
			return nil, fmt.Errorf("%w: species %q learns unknown move %q", ErrInvalidCatalog, d.Name, ld.Move)
		}
		learnset = append(learnset, model.LearnableMove{Move: mt, Level: ld.Level})
	}
	slices.SortStableFunc(learnset, func(a, b model.LearnableMove) int { return a.Level - b.Level })

	return &model.Species{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Type1:       t1,
		Type2:       t2,
		Base: model.BaseStats{
			HP:        d.Base.HP,
			Attack:    d.Base.Attack,
			Defense:   d.Base.Defense,
			SpAttack:  d.Base.SpAttack,
			SpDefense: d.Base.SpDefense,
			Speed:     d.Base.Speed,
		},
		CatchRate:  d.CatchRate,
		ExpBase:    d.ExpBase,
		GrowthRate: growth,
		Learnset:   learnset,
	}, nil
}
