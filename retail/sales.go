package retail

import (
	"context"

	"github.com/retailkit/retailkit/httpclient"
)

// SalesService covers the sales endpoint group.
type SalesService struct {
	http *httpclient.Client
}

// List returns sales matching the given parameters.
func (s *SalesService) List(ctx context.Context, params *ListParams) ([]Sale, error) {
	res, err := httpclient.Get[listEnvelope[Sale]](ctx, s.http, apiPrefix+"/sales",
		httpclient.WithQuery(params.query()))
	if err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

// Get returns one sale by ID.
func (s *SalesService) Get(ctx context.Context, id string) (*Sale, error) {
	res, err := httpclient.Get[itemEnvelope[Sale]](ctx, s.http, apiPrefix+"/sales/"+id)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Create registers a new sale.
func (s *SalesService) Create(ctx context.Context, draft *SaleCreate) (*Sale, error) {
	res, err := httpclient.Post[itemEnvelope[Sale]](ctx, s.http, apiPrefix+"/sales", draft)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Update replaces a sale's mutable fields.
func (s *SalesService) Update(ctx context.Context, id string, draft *SaleCreate) (*Sale, error) {
	res, err := httpclient.Put[itemEnvelope[Sale]](ctx, s.http, apiPrefix+"/sales/"+id, draft)
	if err != nil {
		return nil, err
	}
	return &res.Data.Data, nil
}

// Void cancels a sale. The backend answers 204.
func (s *SalesService) Void(ctx context.Context, id string) error {
	_, err := httpclient.Post[struct{}](ctx, s.http, apiPrefix+"/sales/"+id+"/void", nil)
	return err
}

// AttachReceipt uploads a receipt document for a sale as multipart
// form data.
func (s *SalesService) AttachReceipt(ctx context.Context, id, filename, contentType string, data []byte) error {
	body := &httpclient.MultipartBody{
		Fields: map[string]string{"sale_id": id},
		Files: []httpclient.FileField{{
			FieldName:   "receipt",
			FileName:    filename,
			ContentType: contentType,
			Data:        data,
		}},
	}
	_, err := s.http.Do(ctx, httpclient.Request{
		Method: "POST",
		Path:   apiPrefix + "/sales/" + id + "/receipt",
		Body:   body,
	})
	return err
}
