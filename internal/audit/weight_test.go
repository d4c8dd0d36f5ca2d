package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeableWeight(t *testing.T) {
	t.Run("dead weight wins", func(t *testing.T) {
		// 30*20*25/5000 = 3.0 volumetric < 5.0 dead
		chargeable, volumetric := ChargeableWeight(5, 30, 20, 25)
		assert.Equal(t, 5.0, chargeable)
		require.NotNil(t, volumetric)
		assert.Equal(t, 3.0, *volumetric)
	})

	t.Run("volumetric wins", func(t *testing.T) {
		chargeable, volumetric := ChargeableWeight(2, 30, 20, 25)
		assert.Equal(t, 3.0, chargeable)
		require.NotNil(t, volumetric)
		assert.Equal(t, 3.0, *volumetric)
	})

	t.Run("missing dimensions", func(t *testing.T) {
		chargeable, volumetric := ChargeableWeight(1.2, 0, 20, 25)
		assert.Equal(t, 1.2, chargeable)
		assert.Nil(t, volumetric)
	})

	t.Run("negative dimension treated as missing", func(t *testing.T) {
		chargeable, volumetric := ChargeableWeight(1.2, 30, -1, 25)
		assert.Equal(t, 1.2, chargeable)
		assert.Nil(t, volumetric)
	})

	t.Run("reported volumetric rounds to 3 decimals", func(t *testing.T) {
		// 10*10*11.11/5000 = 0.22222
		_, volumetric := ChargeableWeight(0.1, 10, 10, 11.11)
		require.NotNil(t, volumetric)
		assert.Equal(t, 0.222, *volumetric)
	})
}

func TestRoundHelpers(t *testing.T) {
	assert.Equal(t, 69.15, Round2(69.148))
	assert.Equal(t, 0.85, Round2(0.852))
	assert.Equal(t, 3.142, Round3(3.14159))
}
