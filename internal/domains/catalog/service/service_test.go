package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/catalog/model/dto"
	"salesdesk/internal/domains/catalog/repository"
	"salesdesk/internal/domains/catalog/service"
	"salesdesk/shared/failure"
)

func newService() service.Catalog {
	mockOtel := mocks.NewOtel()

	return service.New(repository.New(mockOtel), mockOtel)
}

func TestCatalogService_AddRoom(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.AddRoomRequest
		wantErr  bool
		wantCode int
	}{
		{
			name: "successful add",
			req: dto.AddRoomRequest{
				Name:       "Garden Pavilion",
				Capacity:   80,
				EventTypes: []string{"Wedding", "birthday"},
			},
			wantErr: false,
		},
		{
			name: "non-positive capacity rejected",
			req: dto.AddRoomRequest{
				Name:       "Broken Room",
				Capacity:   0,
				EventTypes: []string{"wedding"},
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing name rejected",
			req: dto.AddRoomRequest{
				Capacity:   10,
				EventTypes: []string{"wedding"},
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddRoom(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	// Event types are normalized to lowercase on the way in.
	room, err := svc.Get(ctx, "Garden Pavilion")
	assert.NoError(t, err)
	assert.Equal(t, []string{"wedding", "birthday"}, room.EventTypes)
}

func TestCatalogService_GetNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), "Nonexistent")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCatalogService_GetAll(t *testing.T) {
	svc := newService()

	res := svc.GetAll(context.Background())

	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, "Fő terem", res.Rooms[0].Name)
}

func TestCatalogService_Delete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	assert.NoError(t, svc.Delete(ctx, "Bálterem"))

	err := svc.Delete(ctx, "Bálterem")
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCatalogService_CapacityOfAndSupports(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	capacity, err := svc.CapacityOf(ctx, "A konferenciaterem")
	assert.NoError(t, err)
	assert.Equal(t, 50, capacity)

	supports, err := svc.Supports(ctx, "A konferenciaterem", "conference")
	assert.NoError(t, err)
	assert.True(t, supports)

	supports, err = svc.Supports(ctx, "A konferenciaterem", "wedding")
	assert.NoError(t, err)
	assert.False(t, supports)

	_, err = svc.CapacityOf(ctx, "Nonexistent")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
