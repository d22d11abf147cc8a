package constant

type HubType string

const (
	HubTypeCentral  HubType = "CENTRAL_HUB"
	HubTypeRegional HubType = "REGIONAL_HUB"
	HubTypeLocal    HubType = "LOCAL_HUB"
)

type HubStatus int

const (
	HubStatusActive   HubStatus = 1
	HubStatusInactive HubStatus = 2
)
