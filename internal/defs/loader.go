// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed data/*.json
var embedded embed.FS

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrUnknownLevel     = errors.New("unknown level")
)

// Catalog — все статические определения, нужные симуляции.
type Catalog struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[string]EnemyDefinition
	Levels  []LevelDefinition
}

// LoadCatalog читает towers.json, enemies.json и levels.json из каталога dir.
// Пустой dir означает встроенные определения.
func LoadCatalog(dir string) (*Catalog, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	c := &Catalog{}
	var err error
	if c.Towers, err = LoadTowerDefinitions(fsys, "towers.json"); err != nil {
		return nil, err
	}
	if c.Enemies, err = LoadEnemyDefinitions(fsys, "enemies.json"); err != nil {
		return nil, err
	}
	if c.Levels, err = LoadLevelDefinitions(fsys, "levels.json"); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	slog.Debug("Definitions loaded",
		"component", "defs",
		"towers", len(c.Towers),
		"enemies", len(c.Enemies),
		"levels", len(c.Levels),
	)
	return c, nil
}

// MustLoadDefault загружает встроенные определения и паникует при ошибке.
func MustLoadDefault() *Catalog {
	c, err := LoadCatalog("")
	if err != nil {
		panic(err)
	}
	return c
}

// LoadTowerDefinitions reads the tower configuration file.
func LoadTowerDefinitions(fsys fs.FS, name string) (map[TowerKind]TowerDefinition, error) {
	var towerDefs []TowerDefinition
	if err := readJSON(fsys, name, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to load tower definitions: %w", err)
	}

	library := make(map[TowerKind]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if !def.Kind.Valid() {
			return nil, fmt.Errorf("tower %q: %w", def.Kind, ErrUnknownArchetype)
		}
		library[def.Kind] = def
	}
	return library, nil
}

// LoadEnemyDefinitions reads the enemy configuration file.
func LoadEnemyDefinitions(fsys fs.FS, name string) (map[string]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, name, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadLevelDefinitions reads the level table.
func LoadLevelDefinitions(fsys fs.FS, name string) ([]LevelDefinition, error) {
	var levels []LevelDefinition
	if err := readJSON(fsys, name, &levels); err != nil {
		return nil, fmt.Errorf("failed to load level definitions: %w", err)
	}
	return levels, nil
}

// Tower возвращает определение башни по типу.
func (c *Catalog) Tower(kind TowerKind) (TowerDefinition, error) {
	def, ok := c.Towers[kind]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("tower %q: %w", kind, ErrUnknownArchetype)
	}
	return def, nil
}

// Enemy возвращает определение врага по ID.
func (c *Catalog) Enemy(id string) (EnemyDefinition, error) {
	def, ok := c.Enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("enemy %q: %w", id, ErrUnknownArchetype)
	}
	return def, nil
}

// Level возвращает уровень по его ID.
func (c *Catalog) Level(id int) (LevelDefinition, error) {
	for id, def := range c.Enemies {
		if def.Health <= 0 || def.Speed <= 0 || def.Reward < 0 {
			return fmt.Errorf("enemy %q needs positive health and speed", id)
		}
	}
	for _, lvl := range c.Levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return LevelDefinition{}, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
}

func (c *Catalog) validate() error {
	for kind, def := range c.Towers {
		if def.AttackSpeed <= 0 || def.Range <= 0 || def.Cost < 0 || def.UpgradeCost < 0 {
			return fmt.Errorf("tower %q has non-positive combat stats", kind)
		}
		if def.Attack != AttackProjectile && def.Attack != AttackDirect {
			return fmt.Errorf("tower %q has unknown attack mode %q", kind, def.Attack)
		}
		if def.Attack == AttackProjectile && def.ProjectileSpeed <= 0 {
			return fmt.Errorf("tower %q fires projectiles without speed", kind)
		}
	}
	for _, lvl := range c.Levels {
		if len(lvl.Path) == 0 {
			return fmt.Errorf("level %d has an empty path", lvl.ID)
		}
		for i, w := range lvl.Waves {
			if _, ok := c.Enemies[w.EnemyID]; !ok {
				return fmt.Errorf("level %d wave %d: enemy %q: %w", lvl.ID, i+1, w.EnemyID, ErrUnknownArchetype)
			}
			if w.Count < 0 || w.SpawnRate <= 0 {
				return fmt.Errorf("level %d wave %d has invalid count or spawn rate", lvl.ID, i+1)
			}
		}
	}
	return nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}
