package storefront

import "context"

// WorkStatusAll is the identity filter value.
const WorkStatusAll = "all"

// Dashboard is the admin view's local cache: an ordered mapping from order id
// to the last fetched Order. The cache is best effort and may diverge from
// backend truth between refreshes; last completion wins.
type Dashboard struct {
	client *Client
	apiKey string

	ids  []string
	byID map[string]Order
}

func NewDashboard(client *Client, apiKey string) *Dashboard {
	return &Dashboard{
		client: client,
		apiKey: apiKey,
		byID:   map[string]Order{},
	}
}

// Refresh fetches the full collection and replaces the cache wholesale. On
// failure the previously held list stays as it was.
func (d *Dashboard) Refresh(ctx context.Context) error {
	orders, err := d.client.ListOrders(ctx, d.apiKey)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	d.ids = ids
	d.byID = byID
	return nil
}

// Orders returns the cached collection in fetch order.
func (d *Dashboard) Orders() []Order {
	out := make([]Order, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.byID[id])
	}
	return out
}

// Filter is a pure projection over the cached list: WorkStatusAll is the
// identity, any other value keeps only matching workStatus entries, in their
// original order. No backend round-trip.
func (d *Dashboard) Filter(status string) []Order {
	if status == WorkStatusAll {
		return d.Orders()
	}
	out := []Order{}
	for _, id := range d.ids {
		if o := d.byID[id]; o.WorkStatus == status {
			out = append(out, o)
		}
	}
	return out
}

// SetWorkStatus sends the update and, on success, patches only the matching
// order's workStatus in the cache. There is no optimistic update, so failure
// needs no rollback. Transition legality is the backend's call.
func (d *Dashboard) SetWorkStatus(ctx context.Context, id, workStatus string) error {
	if err := d.client.UpdateWorkStatus(ctx, d.apiKey, id, workStatus); err != nil {
		return err
	}

	if o, ok := d.byID[id]; ok {
		o.WorkStatus = workStatus
		d.byID[id] = o
	}
	return nil
}

// NotifyCompleted asks the backend to email the order's customer. The cache
// is untouched; notification leaves no state the dashboard tracks.
func (d *Dashboard) NotifyCompleted(ctx context.Context, id string) error {
	return d.client.NotifyCompleted(ctx, d.apiKey, id)
}

// CanStart, CanComplete and CanNotify drive action enablement in the view.
// They are advisory; the backend re-checks on every call.

func CanStart(o Order) bool {
	return o.PaymentStatus == "paid" && o.WorkStatus == "pending"
}

func CanComplete(o Order) bool {
	return o.PaymentStatus == "paid" && o.WorkStatus != "completed"
}

func CanNotify(o Order) bool {
	return o.WorkStatus == "completed"
}
