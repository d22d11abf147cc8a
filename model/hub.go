package model

import (
	"time"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

type Hub struct {
	ID            uint64             `db:"id" json:"id"`
	Name          string             `db:"name" json:"name"`
	District      string             `db:"district" json:"district"`
	Pincode       string             `db:"pincode" json:"pincode"`
	Type          constant.HubType   `db:"type" json:"type"`
	Latitude      float64            `db:"latitude" json:"latitude"`
	Longitude     float64            `db:"longitude" json:"longitude"`
	RoutePosition int                `db:"route_position" json:"route_position"`
	ManagerID     *uint64            `db:"manager_id" json:"manager_id,omitempty"`
	Status        constant.HubStatus `db:"status" json:"status"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time         `db:"updated_at" json:"updated_at,omitempty"`
}

type HubFilter struct {
	Type     constant.HubType
	District string
	Pincode  string
	Status   constant.HubStatus
}

type CreateHubRequest struct {
	Name          string           `json:"name" validate:"required"`
	District      string           `json:"district" validate:"required"`
	Pincode       string           `json:"pincode" validate:"required,pincode"`
	Type          constant.HubType `json:"type" validate:"required,oneof=CENTRAL_HUB REGIONAL_HUB LOCAL_HUB"`
	Latitude      float64          `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64          `json:"longitude" validate:"gte=-180,lte=180"`
	RoutePosition int              `json:"route_position" validate:"gte=0"`
	ManagerID     *uint64          `json:"manager_id"`
}

type UpdateHubRequest struct {
	Name          *string  `json:"name"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RoutePosition *int     `json:"route_position" validate:"omitempty,gte=0"`
	ManagerID     *uint64  `json:"manager_id"`
}

type HubStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}
