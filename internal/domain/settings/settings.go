// Package settings holds the site configuration defaults and the rules for
// layering a stored configuration document over them.
//
// Stored documents are handled as raw maps so that a missing field can be told
// apart from a field explicitly set to false or "". Precedence is per leaf:
// a leaf present in the stored document wins, an absent leaf keeps the default.
package settings

import (
	"luxestore/internal/domain/entity"
)

// DocumentID is the fixed id of the singleton document in the settings collection.
const DocumentID = "storeConfig"

// Defaults returns the built-in configuration used when nothing is stored.
func Defaults() entity.SiteConfig {
	return entity.SiteConfig{
		StoreName:    "LUXE",
		SupportEmail: "support@luxe.com",
		Currency:     "USD",

		HeroTitle:    "New Collection",
		HeroSubtitle: "Spring/Summer 2025",
		HeroImage:    "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80",

		ShowAnnouncement: true,

		Categories: []entity.CategoryTile{
			{Title: "Shoes"},
			{Title: "Bags"},
			{Title: "Apparel"},
			{Title: "Accessories"},
		},
		SaleBanner1: entity.Banner{Title: "Clearance", Subtitle: "Up to 70% off"},
		SaleBanner2: entity.Banner{Title: "High Boots", Subtitle: "Winter Essentials"},

		PaymentMethods: map[string]bool{
			entity.ProviderStripe:   false,
			entity.ProviderPayPal:   false,
			entity.ProviderPaystack: false,
			entity.ProviderOPay:     false,
		},
		PaymentKeys: map[string]map[string]string{
			entity.ProviderStripe:   {"public": "", "secret": ""},
			entity.ProviderPayPal:   {"clientId": "", "secret": ""},
			entity.ProviderPaystack: {"public": "", "secret": ""},
			entity.ProviderOPay:     {"merchantId": "", "public": ""},
		},
	}
}

// publicKeys are the credential names safe to hand to browsers.
var publicKeys = map[string][]string{
	entity.ProviderStripe:   {"public"},
	entity.ProviderPayPal:   {"clientId"},
	entity.ProviderPaystack: {"public"},
	entity.ProviderOPay:     {"merchantId", "public"},
}

// Merge layers a stored document over base and returns a new configuration.
// Nested values (category tiles, banners, payment maps) merge leaf by leaf.
// Merge(Merge(base, doc), doc) equals Merge(base, doc).
func Merge(base entity.SiteConfig, doc map[string]interface{}) entity.SiteConfig {
	out := base.Clone()
	if doc == nil {
		return out
	}

	mergeString(doc, "storeName", &out.StoreName)
	mergeString(doc, "supportEmail", &out.SupportEmail)
	mergeString(doc, "phone", &out.Phone)
	mergeString(doc, "address", &out.Address)
	mergeString(doc, "currency", &out.Currency)
	mergeString(doc, "heroTitle", &out.HeroTitle)
	mergeString(doc, "heroSubtitle", &out.HeroSubtitle)
	mergeString(doc, "heroImage", &out.HeroImage)
	mergeBool(doc, "showAnnouncement", &out.ShowAnnouncement)
	mergeString(doc, "announcementText", &out.AnnouncementText)
	mergeString(doc, "instagram", &out.Instagram)
	mergeString(doc, "facebook", &out.Facebook)
	mergeString(doc, "twitter", &out.Twitter)

	if tiles, ok := doc["categories"].([]interface{}); ok {
		for i, raw := range tiles {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if i >= len(out.Categories) {
				out.Categories = append(out.Categories, entity.CategoryTile{})
			}
			mergeString(entry, "title", &out.Categories[i].Title)
			mergeString(entry, "image", &out.Categories[i].Image)
		}
	}

	mergeBanner(doc, "saleBanner1", &out.SaleBanner1)
	mergeBanner(doc, "saleBanner2", &out.SaleBanner2)

	if methods, ok := doc["paymentMethods"].(map[string]interface{}); ok {
		for provider, raw := range methods {
			if enabled, ok := raw.(bool); ok {
				out.PaymentMethods[provider] = enabled
			}
		}
	}

	if keys, ok := doc["paymentKeys"].(map[string]interface{}); ok {
		for provider, raw := range keys {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if out.PaymentKeys[provider] == nil {
				out.PaymentKeys[provider] = map[string]string{}
			}
			for name, value := range entry {
				if s, ok := value.(string); ok {
					out.PaymentKeys[provider][name] = s
				}
			}
		}
	}

	return out
}

// ToDocument renders a configuration as a map suitable for a merge write.
func ToDocument(cfg entity.SiteConfig) map[string]interface{} {
	tiles := make([]interface{}, 0, len(cfg.Categories))
	for _, tile := range cfg.Categories {
		tiles = append(tiles, map[string]interface{}{
			"title": tile.Title,
			"image": tile.Image,
		})
	}

	methods := make(map[string]interface{}, len(cfg.PaymentMethods))
	for provider, enabled := range cfg.PaymentMethods {
		methods[provider] = enabled
	}

	keys := make(map[string]interface{}, len(cfg.PaymentKeys))
	for provider, entry := range cfg.PaymentKeys {
		values := make(map[string]interface{}, len(entry))
		for name, value := range entry {
			values[name] = value
		}
		keys[provider] = values
	}

	return map[string]interface{}{
		"storeName":        cfg.StoreName,
		"supportEmail":     cfg.SupportEmail,
		"phone":            cfg.Phone,
		"address":          cfg.Address,
		"currency":         cfg.Currency,
		"heroTitle":        cfg.HeroTitle,
		"heroSubtitle":     cfg.HeroSubtitle,
		"heroImage":        cfg.HeroImage,
		"showAnnouncement": cfg.ShowAnnouncement,
		"announcementText": cfg.AnnouncementText,
		"categories":       tiles,
		"saleBanner1":      bannerDocument(cfg.SaleBanner1),
		"saleBanner2":      bannerDocument(cfg.SaleBanner2),
		"instagram":        cfg.Instagram,
		"facebook":         cfg.Facebook,
		"twitter":          cfg.Twitter,
		"paymentMethods":   methods,
		"paymentKeys":      keys,
	}
}

// Visibility decides which known providers end users may see.
//
// With no stored document, or a stored document without a paymentMethods
// field, every known provider is visible. Once paymentMethods is stored, a
// provider missing from it is hidden.
func Visibility(doc map[string]interface{}, exists bool) map[string]bool {
	visible := make(map[string]bool, len(entity.KnownProviders))

	methods, ok := doc["paymentMethods"].(map[string]interface{})
	if !exists || !ok {
		for _, p := range entity.KnownProviders {
			visible[p.ID] = true
		}
		return visible
	}

	for _, p := range entity.KnownProviders {
		enabled, _ := methods[p.ID].(bool)
		visible[p.ID] = enabled
	}
	return visible
}

// PublicKeys returns only the browser-safe credentials of a provider.
func PublicKeys(cfg entity.SiteConfig, provider string) map[string]string {
	out := map[string]string{}
	for _, name := range publicKeys[provider] {
		if value, ok := cfg.PaymentKeys[provider][name]; ok {
			out[name] = value
		}
	}
	return out
}

// Public strips secret payment credentials from a configuration.
func Public(cfg entity.SiteConfig) entity.SiteConfig {
	out := cfg.Clone()
	out.PaymentKeys = make(map[string]map[string]string, len(cfg.PaymentKeys))
	for provider := range cfg.PaymentKeys {
		out.PaymentKeys[provider] = PublicKeys(cfg, provider)
	}
	return out
}

func mergeString(doc map[string]interface{}, key string, dst *string) {
	if v, ok := doc[key].(string); ok {
		*dst = v
	}
}

func mergeBool(doc map[string]interface{}, key string, dst *bool) {
	if v, ok := doc[key].(bool); ok {
		*dst = v
	}
}

func mergeBanner(doc map[string]interface{}, key string, dst *entity.Banner) {
	entry, ok := doc[key].(map[string]interface{})
	if !ok {
		return
	}
	mergeString(entry, "title", &dst.Title)
	mergeString(entry, "subtitle", &dst.Subtitle)
	mergeString(entry, "image", &dst.Image)
}

func bannerDocument(b entity.Banner) map[string]interface{} {
	return map[string]interface{}{
		"title":    b.Title,
		"subtitle": b.Subtitle,
		"image":    b.Image,
	}
}
