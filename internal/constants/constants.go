package constants

const (
	//分頁與查詢上限
	DefaultProductLimit int = 50
	DefaultReportLimit  int = 50

	//低庫存預設門檻
	DefaultLowStockThreshold int = 5
)

type SortOrderEnum string

const (
	SortOrderMost  SortOrderEnum = "most"
	SortOrderLeast SortOrderEnum = "least"
)

func IsValidSortOrderEnum(order string) bool {
	switch SortOrderEnum(order) {
	case SortOrderMost, SortOrderLeast:
		return true
	default:
		return false
	}
}

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "Authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
