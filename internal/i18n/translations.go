package i18n

// Translations for the transient notifications the ordering flow emits.
// Keys mirror the storefront UI languages: English, French, Swahili.

const (
	KeyItemAdded     = "itemAdded"
	KeyAddedToOrder  = "addedToOrder"
	KeyEmptyCart     = "emptyCart"
	KeyAddItemsFirst = "addItemsFirst"
	KeyOrderPlaced   = "orderPlaced"
	KeyOrderFailed   = "orderFailed"
)

const DefaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		KeyItemAdded:     "Item added",
		KeyAddedToOrder:  "added to your order",
		KeyEmptyCart:     "Empty cart",
		KeyAddItemsFirst: "Please add items to your order first",
		KeyOrderPlaced:   "Your order has been placed successfully",
		KeyOrderFailed:   "Your order could not be placed",
	},
	"fr": {
		KeyItemAdded:     "Article ajouté",
		KeyAddedToOrder:  "ajouté à votre commande",
		KeyEmptyCart:     "Panier vide",
		KeyAddItemsFirst: "Veuillez d'abord ajouter des articles à votre commande",
		KeyOrderPlaced:   "Votre commande a été passée avec succès",
		KeyOrderFailed:   "Votre commande n'a pas pu être passée",
	},
	"sw": {
		KeyItemAdded:     "Kimeongezwa",
		KeyAddedToOrder:  "kimeongezwa kwenye agizo lako",
		KeyEmptyCart:     "Kikapu tupu",
		KeyAddItemsFirst: "Tafadhali ongeza vyakula kwenye agizo lako kwanza",
		KeyOrderPlaced:   "Agizo lako limewekwa",
		KeyOrderFailed:   "Agizo lako halikuweza kuwekwa",
	},
}

// T resolves a notification string, falling back to English for unknown
// languages or keys.
func T(lang, key string) string {
	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return translations[DefaultLanguage][key]
}

func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}
