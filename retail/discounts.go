package retail

import (
	"context"

	"github.com/retailkit/retailkit/httpclient"
)

// DiscountsService covers the discounts endpoint group.
type DiscountsService struct {
	http *httpclient.Client
}

// List returns all discounts.
func (s *DiscountsService) List(ctx context.Context, params *ListParams) ([]Discount, error) {
	res, err := httpclient.Get[listEnvelope[Discount]](ctx, s.http, apiPrefix+"/discounts",
		httpclient.WithQuery(params.query()))
	if err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

// Get returns one discount by ID.
func (s *DiscountsService) Get(ctx context.Context, id string) (*Discount, error) {
	res, err := httpclient.Get[itemEnvelope[Discount]](ctx, s.http, apiPrefix+"/discounts/"+id)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Create registers a new discount.
func (s *DiscountsService) Create(ctx context.Context, draft *DiscountCreate) (*Discount, error) {
	res, err := httpclient.Post[itemEnvelope[Discount]](ctx, s.http, apiPrefix+"/discounts", draft)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Delete removes a discount. The backend answers 204.
func (s *DiscountsService) Delete(ctx context.Context, id string) error {
	_, err := httpclient.Delete[struct{}](ctx, s.http, apiPrefix+"/discounts/"+id)
	return err
}
