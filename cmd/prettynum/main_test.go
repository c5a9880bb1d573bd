// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTokens(t *testing.T) {
	tokens := readTokens(strings.NewReader("15000\n  4230542\t-25621783 "))
	assert.Equal(t, []string{"15000", "4230542", "-25621783"}, tokens)

	tokens = readTokens(strings.NewReader(""))
	assert.Empty(t, tokens)
}
