package entity

// Payment providers known to the store.
const (
	ProviderStripe   = "stripe"
	ProviderPayPal   = "paypal"
	ProviderPaystack = "paystack"
	ProviderOPay     = "opay"
)

// KnownProviders lists providers in display order.
var KnownProviders = []PaymentProvider{
	{ID: ProviderStripe, Name: "Stripe", Type: "Credit/Debit Cards"},
	{ID: ProviderPayPal, Name: "PayPal", Type: "Wallet"},
	{ID: ProviderPaystack, Name: "Paystack", Type: "Direct Bank"},
	{ID: ProviderOPay, Name: "OPay", Type: "Mobile Money"},
}

type PaymentProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CategoryTile struct {
	Title string `json:"title" firestore:"title"`
	Image string `json:"image" firestore:"image"`
}

type Banner struct {
	Title    string `json:"title" firestore:"title"`
	Subtitle string `json:"subtitle" firestore:"subtitle"`
	Image    string `json:"image" firestore:"image"`
}

// SiteConfig is the singleton settings/storeConfig document. JSON and
// Firestore share field names so admin edits can be applied as partial documents.
type SiteConfig struct {
	StoreName    string `json:"storeName" firestore:"storeName"`
	SupportEmail string `json:"supportEmail" firestore:"supportEmail"`
	Phone        string `json:"phone" firestore:"phone"`
	Address      string `json:"address" firestore:"address"`
	Currency     string `json:"currency" firestore:"currency"`

	HeroTitle    string `json:"heroTitle" firestore:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle" firestore:"heroSubtitle"`
	HeroImage    string `json:"heroImage" firestore:"heroImage"`

	ShowAnnouncement bool   `json:"showAnnouncement" firestore:"showAnnouncement"`
	AnnouncementText string `json:"announcementText" firestore:"announcementText"`

	Categories  []CategoryTile `json:"categories" firestore:"categories"`
	SaleBanner1 Banner         `json:"saleBanner1" firestore:"saleBanner1"`
	SaleBanner2 Banner         `json:"saleBanner2" firestore:"saleBanner2"`

	Instagram string `json:"instagram" firestore:"instagram"`
	Facebook  string `json:"facebook" firestore:"facebook"`
	Twitter   string `json:"twitter" firestore:"twitter"`

	PaymentMethods map[string]bool              `json:"paymentMethods" firestore:"paymentMethods"`
	PaymentKeys    map[string]map[string]string `json:"paymentKeys" firestore:"paymentKeys"`
}

// Clone deep-copies the slice and map fields.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.Categories = append([]CategoryTile{}, c.Categories...)

	out.PaymentMethods = make(map[string]bool, len(c.PaymentMethods))
	for k, v := range c.PaymentMethods {
		out.PaymentMethods[k] = v
	}

	out.PaymentKeys = make(map[string]map[string]string, len(c.PaymentKeys))
	for provider, keys := range c.PaymentKeys {
		copied := make(map[string]string, len(keys))
		for name, value := range keys {
			copied[name] = value
		}
		out.PaymentKeys[provider] = copied
	}
	return out
}
