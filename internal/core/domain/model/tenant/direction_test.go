package tenant_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Matches(t *testing.T) {
	d := tenant.Direction{
		ID:         kernel.NewUUID(),
		TenantID:   kernel.NewUUID(),
		Name:       "Zona Sul",
		RangeStart: 4000000,
		RangeEnd:   4999999,
		Value:      kernel.MustMoney(80),
	}

	assert.True(t, d.Matches(4000000), "range start is inclusive")
	assert.True(t, d.Matches(4999999), "range end is inclusive")
	assert.True(t, d.Matches(4510020))
	assert.False(t, d.Matches(3999999))
	assert.False(t, d.Matches(5000000))
}

func TestFreightType(t *testing.T) {
	t.Run("known types validate", func(t *testing.T) {
		for _, f := range []tenant.FreightType{
			tenant.FreightDirectionCategory,
			tenant.FreightDirectionDeliveryFee,
			tenant.FreightDistance,
		} {
			require.NoError(t, f.Validate(), f.String())
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		require.Error(t, tenant.FreightTypeUnknown.Validate())
		require.Error(t, tenant.FreightType(9).Validate())
	})

	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "DIRECAO_CATEGORIA", tenant.FreightDirectionCategory.String())
		assert.Equal(t, "DIRECAO_TAXA_ENTREGA", tenant.FreightDirectionDeliveryFee.String())
		assert.Equal(t, "DISTANCIA", tenant.FreightDistance.String())
	})
}
