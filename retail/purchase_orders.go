package retail

import (
	"context"

	"github.com/retailkit/retailkit/httpclient"
)

// PurchaseOrdersService covers the purchase-order endpoint group.
type PurchaseOrdersService struct {
	http *httpclient.Client
}

// List returns purchase orders matching the given parameters.
func (s *PurchaseOrdersService) List(ctx context.Context, params *ListParams) ([]PurchaseOrder, error) {
	res, err := httpclient.Get[listEnvelope[PurchaseOrder]](ctx, s.http, apiPrefix+"/purchase_orders",
		httpclient.WithQuery(params.query()))
	if err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

// Get returns one purchase order by ID.
func (s *PurchaseOrdersService) Get(ctx context.Context, id string) (*PurchaseOrder, error) {
	res, err := httpclient.Get[itemEnvelope[PurchaseOrder]](ctx, s.http, apiPrefix+"/purchase_orders/"+id)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Create registers a new purchase order.
func (s *PurchaseOrdersService) Create(ctx context.Context, draft *PurchaseOrderCreate) (*PurchaseOrder, error) {
	res, err := httpclient.Post[itemEnvelope[PurchaseOrder]](ctx, s.http, apiPrefix+"/purchase_orders", draft)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Receive marks a purchase order as received, moving its items into
// stock. The backend answers 204.
func (s *PurchaseOrdersService) Receive(ctx context.Context, id string) error {
	_, err := httpclient.Post[struct{}](ctx, s.http, apiPrefix+"/purchase_orders/"+id+"/receive", nil)
	return err
}
