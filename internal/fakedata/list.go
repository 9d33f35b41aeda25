package fakedata

// Item is a composite record for populating tables and lists.
type Item struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Owner       string `json:"owner" yaml:"owner"`
	Email       string `json:"email" yaml:"email"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	Status      string `json:"status" yaml:"status"`
	Priority    string `json:"priority" yaml:"priority"`
	Date        string `json:"date" yaml:"date"`
	Amount      string `json:"amount" yaml:"amount"`
}

// NavItem is one entry of the fixed navigation menu.
type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// Generate invokes gen count times and collects the results in order.
func Generate[T any](count int, gen func() T) ([]T, error) {
	if err := checkCount("list.generate", "count", count); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, invalidArgument("list.generate", "generator must not be nil", nil)
	}
	out := make([]T, count)
	for i := range out {
		out[i] = gen()
	}
	return out, nil
}

// List generates collections.
type List struct{ f *Faker }

// Items returns count records with 1-based IDs.
func (l List) Items(count int) ([]Item, error) {
	if err := checkCount("list.items", "count", count); err != nil {
		return nil, err
	}
	items := make([]Item, count)
	for i := range items {
		items[i] = l.item(i + 1)
	}
	return items, nil
}

func (l List) item(id int) Item {
	text := l.f.Text()
	user := l.f.User()
	owner := user.Name()
	amount, _ := l.f.Number().Currency(DefaultCurrencyMin, DefaultCurrencyMax)
	return Item{
		ID:          id,
		Title:       text.Title(),
		Description: text.sentence(DefaultSentenceWords),
		Owner:       owner,
		Email:       user.Email(),
		Avatar:      user.Avatar(owner),
		Status:      l.f.Status().Generic(),
		Priority:    l.f.Status().Priority(),
		Date:        l.f.Date().Formatted(nil),
		Amount:      amount,
	}
}

// Navigation returns the fixed six-entry menu. The slice is a copy.
func (l List) Navigation() []NavItem {
	out := make([]NavItem, len(navigation))
	copy(out, navigation)
	return out
}
