package retail

import (
	"context"

	"github.com/retailkit/retailkit/httpclient"
)

// InventoryService covers the inventory endpoint group.
type InventoryService struct {
	http *httpclient.Client
}

// Levels returns stock levels matching the given parameters.
func (s *InventoryService) Levels(ctx context.Context, params *ListParams) ([]InventoryLevel, error) {
	res, err := httpclient.Get[listEnvelope[InventoryLevel]](ctx, s.http, apiPrefix+"/inventory",
		httpclient.WithQuery(params.query()))
	if err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

// Get returns the stock level of one product at one outlet.
func (s *InventoryService) Get(ctx context.Context, productID, outletID string) (*InventoryLevel, error) {
	res, err := httpclient.Get[itemEnvelope[InventoryLevel]](ctx, s.http, apiPrefix+"/inventory/"+productID,
		httpclient.WithQueryParam("outlet_id", outletID))
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Adjust applies a manual stock adjustment and returns the new level.
func (s *InventoryService) Adjust(ctx context.Context, adj *InventoryAdjustment) (*InventoryLevel, error) {
	res, err := httpclient.Post[itemEnvelope[InventoryLevel]](ctx, s.http, apiPrefix+"/inventory/adjustments", adj)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}
