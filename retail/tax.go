package retail

import (
	"context"

	"github.com/retailkit/retailkit/httpclient"
)

// TaxService covers the tax endpoint group.
type TaxService struct {
	http *httpclient.Client
}

// Rates returns all configured tax rates.
func (s *TaxService) Rates(ctx context.Context) ([]TaxRate, error) {
	res, err := httpclient.Get[listEnvelope[TaxRate]](ctx, s.http, apiPrefix+"/tax/rates")
	if err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

// Get returns one tax rate by ID.
func (s *TaxService) Get(ctx context.Context, id string) (*TaxRate, error) {
	res, err := httpclient.Get[itemEnvelope[TaxRate]](ctx, s.http, apiPrefix+"/tax/rates/"+id)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}
