package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	details Details
	err     error
}

func (s *stubRepo) List() ([]Transaction, error) { return nil, nil }
func (s *stubRepo) GetDetails(id int) (Details, error) {
	if s.err != nil {
		return Details{}, s.err
	}
	return s.details, nil
}

func TestDetails_ParsesShippingInfo(t *testing.T) {
	svc := NewService(&stubRepo{details: Details{ID: 5, AddressJSON: `{"area":"Salmiya","house":"12"}`}})

	d, err := svc.Details(5)
	require.NoError(t, err)
	assert.Equal(t, "Salmiya", d.ShippingInfo["area"])
	assert.Equal(t, "12", d.ShippingInfo["house"])
}

func TestDetails_MalformedAddressNeverErrors(t *testing.T) {
	svc := NewService(&stubRepo{details: Details{ID: 5, AddressJSON: "{{{"}})

	d, err := svc.Details(5)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, d.ShippingInfo)
}

func TestDetails_NotFoundPassesThrough(t *testing.T) {
	svc := NewService(&stubRepo{err: ErrNotFound})

	_, err := svc.Details(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
