package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/domain/settings"
)

// Service exposes the general-settings CRUD collections. All nine resource
// families share one request cycle; only the path and the entity key under
// which the server nests results differ.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns every item in the resource collection.
func (s *Service) List(ctx context.Context, resource settings.Resource) ([]settings.Item, error) {
	if err := checkResource(resource); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := s.client.Get(ctx, resource.Path(), nil, &raw); err != nil {
		return nil, err
	}

	payload, ok := raw[resource.ListKey()]
	if !ok {
		return nil, fmt.Errorf("response missing %q key", resource.ListKey())
	}

	var items []settings.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", resource, err)
	}
	return items, nil
}

// Create adds an item to the resource collection.
func (s *Service) Create(ctx context.Context, resource settings.Resource, req settings.SaveRequest) (*settings.Item, error) {
	if err := checkResource(resource); err != nil {
		return nil, err
	}
	if err := req.Validate(resource); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := s.client.PostJSON(ctx, resource.Path(), req, &raw); err != nil {
		return nil, err
	}
	return decodeItem(resource, raw)
}

// Update modifies an item in the resource collection.
func (s *Service) Update(ctx context.Context, resource settings.Resource, id int64, req settings.SaveRequest) (*settings.Item, error) {
	if err := checkResource(resource); err != nil {
		return nil, err
	}
	if err := req.Validate(resource); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	err := s.client.PutJSON(ctx, itemPath(resource, id), req, &raw)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, settings.ErrItemNotFound
		}
		return nil, err
	}
	return decodeItem(resource, raw)
}

// Delete removes an item from the resource collection.
func (s *Service) Delete(ctx context.Context, resource settings.Resource, id int64) error {
	if err := checkResource(resource); err != nil {
		return err
	}

	var resp settings.ActionResponse
	err := s.client.Delete(ctx, itemPath(resource, id), &resp)
	if err != nil {
		if api.IsNotFound(err) {
			return settings.ErrItemNotFound
		}
		return err
	}
	return nil
}

func itemPath(resource settings.Resource, id int64) string {
	return resource.Path() + strconv.FormatInt(id, 10) + "/"
}

func checkResource(resource settings.Resource) error {
	for _, r := range settings.AllResources() {
		if r == resource {
			return nil
		}
	}
	return settings.ErrUnknownResource
}

func decodeItem(resource settings.Resource, raw map[string]json.RawMessage) (*settings.Item, error) {
	payload, ok := raw[resource.ItemKey()]
	if !ok {
		return nil, fmt.Errorf("response missing %q key", resource.ItemKey())
	}
	var item settings.Item
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", resource.ItemKey(), err)
	}
	return &item, nil
}
