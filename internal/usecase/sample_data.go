package usecase

import "github.com/yourusername/shop-catalog/internal/domain/entity"

// SampleCategories bo'sh baza uchun boshlang'ich kategoriyalar
var SampleCategories = []entity.Category{
	{ID: 1, Name: "Traditional Sets", Description: "Professional window cleaning sets for the traditional method", ImageURL: "https://winshop.me/wp-content/uploads/2023/05/traditional-sets.jpg"},
	{ID: 2, Name: "Water-fed Brushes", Description: "Brushes for the water-fed cleaning method", ImageURL: "https://winshop.me/wp-content/uploads/2023/05/water-fed-brushes.jpg"},
	{ID: 3, Name: "Telescopic Poles", Description: "Telescopic poles for cleaning windows at height", ImageURL: "https://winshop.me/wp-content/uploads/2023/05/telescopic-poles.jpg"},
	{ID: 4, Name: "Traditional Tools", Description: "Washers, squeegees and scrapers", ImageURL: "https://winshop.me/wp-content/uploads/2023/05/traditional-tools.jpg"},
	{ID: 5, Name: "Soft Wash Sets", Description: "Kits for soft washing of facades and windows", ImageURL: "https://winshop.me/wp-content/uploads/2023/05/soft-wash.jpg"},
}

// SampleProducts bo'sh baza uchun boshlang'ich mahsulotlar
var SampleProducts = []entity.Product{
	{
		ID: 1, Name: "Moerman Premium Window Cleaning Set", Description: "Professional window cleaning set",
		Price: 127.47, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/moerman-premium-set.jpg",
		Category: "Traditional Sets", CategoryID: 1,
		Details:        "Complete set of professional window cleaning equipment.",
		Specifications: "• Window washer\n• Squeegee\n• Telescopic pole\n• Belt\n• Bucket",
		InStock:        true,
	},
	{
		ID: 2, Name: "Super Combo Washer & Squeegee", Description: "Combined window cleaning set",
		Price: 228.94, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/super-combo-set.jpg",
		Category: "Traditional Sets", CategoryID: 1,
		Details:        "Economical set combining quality and affordability.",
		Specifications: "• Washer: 35 cm\n• Squeegee: 35 cm\n• Quick change attachments",
		InStock:        true,
	},
	{
		ID: 4, Name: "Gardiner Ultimate Flocked Brush 35 cm", Description: "Flocked brush for water-fed poles",
		Price: 223.86, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/gardiner-flocked-brush.jpg",
		Category: "Water-fed Brushes", CategoryID: 2,
		Details:        "Soft flocked bristles for delicate surfaces.",
		Specifications: "• Width: 35 cm\n• Flocked bristles\n• Two rinse bars",
		InStock:        true,
	},
	{
		ID: 5, Name: "Unger HydraBrush 35 cm", Description: "Lightweight water-fed brush",
		Price: 189.99, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/unger-hydrabrush.jpg",
		Category: "Water-fed Brushes", CategoryID: 2,
		Details:        "Brush with angle adapter for hard-to-reach windows.",
		Specifications: "• Width: 35 cm\n• Angle adapter\n• Jet nozzles",
		InStock:        false,
	},
	{
		ID: 7, Name: "Moerman Bi-Component Telescopic Pole", Description: "Light and stiff telescopic pole",
		Price: 171.00, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/moerman-pole.jpg",
		Category: "Telescopic Poles", CategoryID: 3,
		Details:        "Bi-component construction for extra stiffness.",
		Specifications: "• Length: 2 x 1.25 m\n• Material: fiberglass and carbon",
		InStock:        true,
	},
	{
		ID: 10, Name: "Unger Visa Versa Pro Squeegee & Washer", Description: "Two-in-one tool",
		Price: 186.90, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/unger-visa-versa.jpg",
		Category: "Traditional Tools", CategoryID: 4,
		Details:        "Washer and squeegee combined in one handle.",
		Specifications: "• Width: 35 cm\n• Swivel handle",
		InStock:        true,
	},
	{
		ID: 14, Name: "Softwash Basic Kit", Description: "Entry level soft wash kit",
		Price: 2499.99, ImageURL: "https://winshop.me/wp-content/uploads/2023/05/softwash-basic.jpg",
		Category: "Soft Wash Sets", CategoryID: 5,
		Details:        "Pump, hose and lance for low pressure cleaning.",
		Specifications: "• 12V pump\n• 50 m hose\n• Spray lance",
		InStock:        true,
	},
}
