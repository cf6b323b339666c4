package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestOptions_GraphIsComplete(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(options()))
}
