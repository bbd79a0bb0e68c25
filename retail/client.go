package retail

import (
	"github.com/retailkit/retailkit/httpclient"
)

// apiPrefix is the versioned path prefix shared by all endpoint groups.
const apiPrefix = "/api/2.0"

// Client aggregates the domain endpoint groups over one request engine.
type Client struct {
	http *httpclient.Client

	Sales          *SalesService
	Inventory      *InventoryService
	PurchaseOrders *PurchaseOrdersService
	Discounts      *DiscountsService
	Tax            *TaxService
}

// New creates a retail API client from an engine configuration.
func New(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	engine, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromEngine(engine), nil
}

// NewFromEngine creates a retail API client from an existing engine.
func NewFromEngine(engine *httpclient.Client) *Client {
	c := &Client{http: engine}
	c.Sales = &SalesService{http: engine}
	c.Inventory = &InventoryService{http: engine}
	c.PurchaseOrders = &PurchaseOrdersService{http: engine}
	c.Discounts = &DiscountsService{http: engine}
	c.Tax = &TaxService{http: engine}
	return c
}

// HTTP returns the underlying request engine.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// Close releases resources held by the underlying engine.
func (c *Client) Close() {
	c.http.Close()
}
