package orchestration

import (
	"sort"

	"github.com/agbru/a079777/internal/config"
	"github.com/agbru/a079777/internal/sequence"
)

// EngineChoice pairs an engine with its registry key.
type EngineChoice struct {
	Key    string
	Engine sequence.Engine
}

// GetEnginesToRun resolves the -algo value against the factory. "all"
// returns every registered engine in sorted key order; an unknown name
// returns nil.
func GetEnginesToRun(algo string, factory sequence.EngineFactory) []EngineChoice {
	if algo == config.AlgoAll {
		engines := factory.GetAll()
		choices := make([]EngineChoice, 0, len(engines))
		for k, engine := range engines {
			choices = append(choices, EngineChoice{Key: k, Engine: engine})
		}
		sort.Slice(choices, func(i, j int) bool { return choices[i].Key < choices[j].Key })
		return choices
	}
	if engine, err := factory.Get(algo); err == nil {
		return []EngineChoice{{Key: algo, Engine: engine}}
	}
	return nil
}
