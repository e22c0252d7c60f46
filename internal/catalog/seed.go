package catalog

import "souq-tech/internal/domain"

// Seed catalog for the storefront. The leading entry of seedCategories is the
// "no filter" sentinel the listing UI renders first.

var seedCategories = []string{
	domain.CategoryAllArabic,
	"سماعات",
	"ساعات ذكية",
	"شواحن",
	"إكسسوارات",
}

var seedPriceRanges = []PriceRange{
	{Label: "أقل من 5000 دينار", Min: 0, Max: 5000},
	{Label: "5000 - 15000 دينار", Min: 5000, Max: 15000},
	{Label: "15000 - 30000 دينار", Min: 15000, Max: 30000},
	{Label: "أكثر من 30000 دينار", Min: 30000, Max: 1000000},
}

var seedRegions = map[string][]string{
	"الجزائر":  {"الجزائر الوسطى", "باب الوادي", "حسين داي", "الحراش", "بئر مراد رايس"},
	"وهران":    {"وهران", "السانية", "بئر الجير", "عين الترك"},
	"قسنطينة":  {"قسنطينة", "الخروب", "حامة بوزيان", "عين سمارة"},
	"عنابة":    {"عنابة", "البوني", "الحجار", "سرايدي"},
	"سطيف":     {"سطيف", "العلمة", "عين ولمان", "بوقاعة"},
	"تيزي وزو": {"تيزي وزو", "عزازقة", "ذراع بن خدة", "بوغني"},
}

var seedProducts = []domain.Product{
	{
		ID:            1,
		Name:          "سماعات بلوتوث لاسلكية فاخرة",
		Price:         12999,
		OriginalPrice: 16999,
		Image:         "/images/products/wireless-headphones.jpg",
		Rating:        4.8,
		Reviews:       324,
		Category:      "سماعات",
		Badge:         "الأكثر مبيعاً",
		Description:   "سماعات لاسلكية بجودة صوت استثنائية وعزل ضوضاء نشط وبطارية تدوم 30 ساعة.",
		Features: []string{
			"عزل ضوضاء نشط",
			"بطارية 30 ساعة",
			"شحن سريع USB-C",
			"مقاومة للماء IPX4",
		},
		Specifications: map[string]string{
			"البلوتوث": "5.3",
			"الوزن":    "250 غرام",
			"البطارية": "30 ساعة",
			"الضمان":   "سنة واحدة",
		},
		InStock: true,
	},
	{
		ID:            2,
		Name:          "ساعة ذكية رياضية متقدمة",
		Price:         25999,
		OriginalPrice: 25999,
		Image:         "/images/products/sport-smartwatch.jpg",
		Rating:        4.6,
		Reviews:       198,
		Category:      "ساعات ذكية",
		Badge:         "جديد",
		Description:   "ساعة ذكية بشاشة AMOLED ومتابعة دقيقة لنبضات القلب وأكثر من 100 وضع رياضي.",
		Features: []string{
			"شاشة AMOLED 1.43 بوصة",
			"GPS مدمج",
			"مقاومة للماء 5ATM",
			"بطارية 14 يوم",
		},
		Specifications: map[string]string{
			"الشاشة":   "AMOLED",
			"البطارية": "14 يوم",
			"المقاومة": "5ATM",
			"الضمان":   "سنة واحدة",
		},
		InStock: true,
	},
	{
		ID:            3,
		Name:          "شاحن محمول سريع فائق القوة",
		Price:         3899,
		OriginalPrice: 5499,
		Image:         "/images/products/power-bank.jpg",
		Rating:        4.7,
		Reviews:       512,
		Category:      "شواحن",
		Badge:         "عرض خاص",
		Description:   "باور بانك بسعة 20000 مللي أمبير وشحن سريع 65 واط يشحن الحاسوب المحمول أيضاً.",
		Features: []string{
			"سعة 20000mAh",
			"شحن سريع 65W",
			"منفذان USB-C ومنفذ USB-A",
			"شاشة رقمية للشحن",
		},
		Specifications: map[string]string{
			"السعة":  "20000mAh",
			"القدرة": "65W",
			"الوزن":  "420 غرام",
			"الضمان": "6 أشهر",
		},
		InStock: true,
	},
	{
		ID:            4,
		Name:          "فأرة ألعاب لاسلكية مريحة",
		Price:         6499,
		OriginalPrice: 7999,
		Image:         "/images/products/gaming-mouse.jpg",
		Rating:        4.5,
		Reviews:       156,
		Category:      "إكسسوارات",
		Description:   "فأرة ألعاب لاسلكية بدقة 26000 DPI وإضاءة RGB وبطارية تدوم 90 ساعة.",
		Features: []string{
			"دقة 26000 DPI",
			"إضاءة RGB قابلة للتخصيص",
			"بطارية 90 ساعة",
			"8 أزرار قابلة للبرمجة",
		},
		Specifications: map[string]string{
			"الدقة":    "26000 DPI",
			"البطارية": "90 ساعة",
			"الوزن":    "74 غرام",
			"الضمان":   "سنتان",
		},
		InStock: true,
	},
	{
		ID:            5,
		Name:          "سماعات أذن رياضية مقاومة للماء",
		Price:         4599,
		OriginalPrice: 4599,
		Image:         "/images/products/sport-earbuds.jpg",
		Rating:        4.3,
		Reviews:       287,
		Category:      "سماعات",
		Description:   "سماعات أذن لاسلكية مصممة للرياضة بثبات ممتاز ومقاومة للعرق والماء.",
		Features: []string{
			"مقاومة IPX7",
			"بطارية 8 ساعات + 24 في العلبة",
			"أطراف أذن مريحة",
		},
		Specifications: map[string]string{
			"البلوتوث": "5.2",
			"المقاومة": "IPX7",
			"البطارية": "32 ساعة إجمالاً",
			"الضمان":   "سنة واحدة",
		},
		InStock: true,
	},
	{
		ID:            6,
		Name:          "ساعة ذكية كلاسيكية أنيقة",
		Price:         32999,
		OriginalPrice: 38999,
		Image:         "/images/products/classic-smartwatch.jpg",
		Rating:        4.9,
		Reviews:       89,
		Category:      "ساعات ذكية",
		Badge:         "فاخر",
		Description:   "ساعة ذكية بتصميم كلاسيكي فاخر وهيكل من الفولاذ المقاوم للصدأ ومكالمات بلوتوث.",
		Features: []string{
			"هيكل فولاذي",
			"مكالمات بلوتوث",
			"شحن لاسلكي",
			"زجاج ياقوتي",
		},
		Specifications: map[string]string{
			"الهيكل":   "فولاذ مقاوم للصدأ",
			"الشاشة":   "AMOLED دائرية",
			"البطارية": "7 أيام",
			"الضمان":   "سنتان",
		},
		InStock: false,
	},
	{
		ID:            7,
		Name:          "شاحن لاسلكي مغناطيسي ثلاثي",
		Price:         8999,
		OriginalPrice: 11999,
		Image:         "/images/products/wireless-charger.jpg",
		Rating:        4.4,
		Reviews:       143,
		Category:      "شواحن",
		Description:   "قاعدة شحن لاسلكي تشحن الهاتف والساعة والسماعات في آن واحد بقدرة 15 واط.",
		Features: []string{
			"شحن ثلاثي متزامن",
			"تثبيت مغناطيسي",
			"قدرة 15W للهاتف",
		},
		Specifications: map[string]string{
			"القدرة": "15W",
			"الوزن":  "310 غرام",
			"الضمان": "سنة واحدة",
		},
		InStock: true,
	},
	{
		ID:            8,
		Name:          "حامل هاتف مكتبي قابل للطي",
		Price:         1899,
		OriginalPrice: 2499,
		Image:         "/images/products/phone-stand.jpg",
		Rating:        4.2,
		Reviews:       431,
		Category:      "إكسسوارات",
		Description:   "حامل ألومنيوم قابل للطي والتعديل يناسب كل الهواتف والأجهزة اللوحية حتى 13 بوصة.",
		Features: []string{
			"ألومنيوم خفيف",
			"زوايا قابلة للتعديل",
			"قابل للطي للسفر",
		},
		Specifications: map[string]string{
			"الخامة": "ألومنيوم",
			"الوزن":  "180 غرام",
			"الضمان": "6 أشهر",
		},
		InStock: true,
	},
}
