// SPDX-License-Identifier: MIT
package logging_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/internal/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := logging.New("warn")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.InfoLevel))
	require.True(t, l.Core().Enabled(zap.ErrorLevel))

	_, err = logging.New("loud")
	require.Error(t, err)
}
