package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/muhammadheryan/hub-fulfillment/application/product"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	productmocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/product"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListProducts(t *testing.T) {
	items := []model.ProductListItem{
		{ID: 1, Name: "Rice 5kg", AvailableStock: 100, Price: decimal.NewFromInt(12)},
		{ID: 2, Name: "Coconut Oil 1L", AvailableStock: 0, Price: decimal.RequireFromString("4.75")},
	}

	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		hubID   uint64
		page    int
		perPage int
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
	}{
		{
			name: "success: catalog-wide availability",
			args: args{page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, uint64(0), 1, 10).Return(items, int64(2), nil).Once()
			},
			want: &model.ProductListResponse{Items: items, TotalCount: 2, Page: 1, PerPage: 10},
		},
		{
			name: "success: availability at one hub",
			args: args{hubID: 20, page: 2, perPage: 5},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, uint64(20), 2, 5).Return(items[:1], int64(6), nil).Once()
			},
			want: &model.ProductListResponse{Items: items[:1], TotalCount: 6, Page: 2, PerPage: 5, HubID: 20},
		},
		{
			name: "success: defaults for page and per page",
			args: args{page: 0, perPage: -1},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, uint64(0), 1, 10).Return([]model.ProductListItem{}, int64(0), nil).Once()
			},
			want: &model.ProductListResponse{Items: []model.ProductListItem{}, TotalCount: 0, Page: 1, PerPage: 10},
		},
		{
			name: "error: repository failure",
			args: args{page: 1, perPage: 10},
			mockCall: func(f fields) {
				f.productRepo.On("List", mock.Anything, uint64(0), 1, 10).Return(nil, int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productRepo: productmocks.NewProductRepository(t)}
			tt.mockCall(f)

			s := appproduct.NewProductApp(f.productRepo)
			got, err := s.ListProducts(context.Background(), tt.args.hubID, tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Errorf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListProducts() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	detail := &model.ProductDetail{ID: 1, Name: "Rice 5kg", Description: "Matta rice", AvailableStock: 40, Price: decimal.NewFromInt(12)}

	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		hubID    uint64
		mockCall func(f fields)
		want     *model.ProductDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: product found",
			hubID: 20,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1), uint64(20)).Return(detail, nil).Once()
			},
			want: detail,
		},
		{
			name: "error: product missing",
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1), uint64(0)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1), uint64(0)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productRepo: productmocks.NewProductRepository(t)}
			tt.mockCall(f)

			s := appproduct.NewProductApp(f.productRepo)
			got, err := s.GetProduct(context.Background(), 1, tt.hubID)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if err.Error() != cerr.SetCustomError(tt.errCode).Error() {
					t.Errorf("GetProduct() error = %v, want %v", err, cerr.SetCustomError(tt.errCode))
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetProduct() got = %v, want %v", got, tt.want)
			}
		})
	}
}
