package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsidwell/simplex/internal/config"
	"github.com/nsidwell/simplex/internal/rule"
)

func TestPickRulePrefersExplicitFlagOverConfig(t *testing.T) {
	cfg := &config.Config{Bland: false}
	assert.Equal(t, rule.Bland{}, pickRule(cfg, true))
}

func TestPickRuleFallsBackToConfig(t *testing.T) {
	cfg := &config.Config{Bland: true}
	assert.Equal(t, rule.Bland{}, pickRule(cfg, false))
}

func TestPickRuleDefaultsToLargestCoefficient(t *testing.T) {
	cfg := &config.Config{Bland: false}
	assert.Equal(t, rule.LargestCoefficient{}, pickRule(cfg, false))
}
