// Package i18n holds the static English/Arabic translation table for all
// user-facing strings. Lookup is a plain key/value mapping; a missing key
// falls back to the key itself.
package i18n

import "strings"

// Language is a supported language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	return code == string(English) || code == string(Arabic)
}

// IsRTL reports whether the language renders right-to-left.
func IsRTL(lang Language) bool {
	return lang == Arabic
}

// T renders the string identified by key in the given language. Unknown
// languages fall back to English; unknown keys fall back to the key
// itself, so a missing translation never blanks the UI.
func T(lang Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[English]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Table returns the full translation table for a language, for clients
// that load all strings up front.
func Table(lang Language) map[string]string {
	if table, ok := translations[lang]; ok {
		return table
	}
	return translations[English]
}

// CategoryName returns the localized display name for a category.
// Unrecognized categories come back unchanged.
func CategoryName(lang Language, category string) string {
	key := strings.ToLower(strings.ReplaceAll(category, " ", ""))
	table, ok := translations[lang]
	if !ok {
		table = translations[English]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return category
}

var translations = map[Language]map[string]string{
	English: {
		// General
		"appName":           "Taste Haven",
		"menu":              "Menu",
		"dashboard":         "Dashboard",
		"ourMenu":           "Our Menu",
		"menuDashboard":     "Menu Dashboard",
		"imageNotFound":     "Image not available",
		"welcomeMessage":    "Welcome to our restaurant menu",
		"exploreMenu":       "Explore our menu",
		"filterByCategory":  "Filter by category",
		"allCategories":     "All Categories",
		"searchPlaceholder": "Search dishes...",
		"noResults":         "No dishes found",
		"aboutUs":           "About Us",

		// Dashboard form
		"addNewMenuItem": "Add New Menu Item",
		"editMenuItem":   "Edit Menu Item",
		"dishName":       "Dish Name",
		"enterDishName":  "Enter dish name",
		"price":          "Price",
		"enterPrice":     "Enter price",
		"category":       "Category",
		"selectCategory": "Select a category",
		"imageUrl":       "Image URL",
		"enterImageUrl":  "Enter image URL",
		"addMenuItem":    "Add Menu Item",
		"updateItem":     "Update Item",
		"cancel":         "Cancel",

		// Categories
		"appetizers": "Appetizers",
		"maindishes": "Main Dishes",
		"desserts":   "Desserts",
		"drinks":     "Drinks",
		"specials":   "Specials",
		"sides":      "Sides",
		"other":      "Other",

		// Dashboard management
		"manageMenuItems": "Manage Menu Items",
		"items":           "items",
		"noMenuItems":     "No menu items available. Add some using the form!",
		"edit":            "Edit",
		"delete":          "Delete",

		// Messages
		"dishNameRequired": "Dish name is required",
		"pricePositive":    "Price must be a positive number",
		"categoryRequired": "Category is required",
		"imageUrlRequired": "Image URL is required",
		"updateSuccess":    "Menu item updated successfully!",
		"addSuccess":       "Menu item added successfully!",
		"updateFailed":     "Failed to update menu item",
		"addFailed":        "Failed to add menu item",
		"loadFailed":       "Failed to load menu items",
		"deleteSuccess":    "Menu item deleted successfully!",
		"deleteFailed":     "Failed to delete menu item",

		// Auth
		"login":              "Login",
		"username":           "Username",
		"password":           "Password",
		"enterUsername":      "Enter username",
		"enterPassword":      "Enter password",
		"invalidCredentials": "Invalid username or password",
		"loginRequired":      "You need to login to access the dashboard",
		"loginSuccess":       "Login successful!",
		"logout":             "Logout",
		"accessDenied":       "Access Denied",
		"adminLogin":         "Admin Login",
		"backToMenu":         "Back to Menu",
		"switchToLanguage":   "Switch Language",
		"loginFailed":        "Login failed. Please try again.",
	},
	Arabic: {
		// General
		"appName":           "المذاق الرائع",
		"menu":              "القائمة",
		"dashboard":         "لوحة التحكم",
		"ourMenu":           "قائمتنا",
		"menuDashboard":     "لوحة تحكم القائمة",
		"imageNotFound":     "الصورة غير متوفرة",
		"welcomeMessage":    "مرحباً بكم في قائمة مطعمنا",
		"exploreMenu":       "تصفح قائمتنا",
		"filterByCategory":  "تصفية حسب الفئة",
		"allCategories":     "جميع الفئات",
		"searchPlaceholder": "ابحث عن الأطباق...",
		"noResults":         "لم يتم العثور على أطباق",
		"aboutUs":           "من نحن",

		// Dashboard form
		"addNewMenuItem": "إضافة عنصر جديد للقائمة",
		"editMenuItem":   "تعديل عنصر القائمة",
		"dishName":       "اسم الطبق",
		"enterDishName":  "أدخل اسم الطبق",
		"price":          "السعر",
		"enterPrice":     "أدخل السعر",
		"category":       "الفئة",
		"selectCategory": "اختر فئة",
		"imageUrl":       "رابط الصورة",
		"enterImageUrl":  "أدخل رابط الصورة",
		"addMenuItem":    "إضافة عنصر للقائمة",
		"updateItem":     "تحديث العنصر",
		"cancel":         "إلغاء",

		// Categories
		"appetizers": "المقبلات",
		"maindishes": "الأطباق الرئيسية",
		"desserts":   "الحلويات",
		"drinks":     "المشروبات",
		"specials":   "الأطباق المميزة",
		"sides":      "الأطباق الجانبية",
		"other":      "أخرى",

		// Dashboard management
		"manageMenuItems": "إدارة عناصر القائمة",
		"items":           "عناصر",
		"noMenuItems":     "لا توجد عناصر في القائمة. أضف بعضها باستخدام النموذج!",
		"edit":            "تعديل",
		"delete":          "حذف",

		// Messages
		"dishNameRequired": "اسم الطبق مطلوب",
		"pricePositive":    "يجب أن يكون السعر رقماً موجباً",
		"categoryRequired": "الفئة مطلوبة",
		"imageUrlRequired": "رابط الصورة مطلوب",
		"updateSuccess":    "تم تحديث عنصر القائمة بنجاح!",
		"addSuccess":       "تمت إضافة عنصر القائمة بنجاح!",
		"updateFailed":     "فشل تحديث عنصر القائمة",
		"addFailed":        "فشلت إضافة عنصر القائمة",
		"loadFailed":       "فشل تحميل عناصر القائمة",
		"deleteSuccess":    "تم حذف عنصر القائمة بنجاح!",
		"deleteFailed":     "فشل حذف عنصر القائمة",

		// Auth
		"login":              "تسجيل الدخول",
		"username":           "اسم المستخدم",
		"password":           "كلمة المرور",
		"enterUsername":      "أدخل اسم المستخدم",
		"enterPassword":      "أدخل كلمة المرور",
		"invalidCredentials": "اسم المستخدم أو كلمة المرور غير صحيحة",
		"loginRequired":      "تحتاج إلى تسجيل الدخول للوصول إلى لوحة التحكم",
		"loginSuccess":       "تم تسجيل الدخول بنجاح!",
		"logout":             "تسجيل الخروج",
		"accessDenied":       "تم رفض الوصول",
		"adminLogin":         "دخول المسؤول",
		"backToMenu":         "العودة إلى القائمة",
		"switchToLanguage":   "تغيير اللغة",
		"loginFailed":        "فشل تسجيل الدخول. حاول مرة أخرى.",
	},
}
