package series

// ServiceMethodDimensionKey is the dimension every split-by series is tagged
// with. The ".name" suffix carries the human-readable label, mirroring how
// the real API pairs entity ids with display names in dimensionMap.
const ServiceMethodDimensionKey = "dt.entity.service_method"

// Fixture identifies one synthetic split-by series: a stable entity id, a
// human-readable request name, and the inclusive integer range its values
// are drawn from.
type Fixture struct {
	EntityID string
	Name     string
	MinValue int64
	MaxValue int64
}

// DefaultServiceMethodFixtures are the three service methods the simulator
// reports for split-by queries. They are fixture content, not catalog data;
// swap the table when a deployment or test needs different identities.
var DefaultServiceMethodFixtures = []Fixture{
	{EntityID: "SERVICE_METHOD-9A2B7F4C1D8E3056", Name: "/api/orders/place", MinValue: 2000, MaxValue: 2800},
	{EntityID: "SERVICE_METHOD-5C1D9E8A2F7B3410", Name: "/api/orders/status", MinValue: 1000, MaxValue: 1400},
	{EntityID: "SERVICE_METHOD-0E6F3A9B8C2D5174", Name: "/api/payments/charge", MinValue: 500, MaxValue: 1000},
}
