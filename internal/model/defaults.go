package model

func intPtr(v int) *int { return &v }

// DefaultDishes seeds the catalog on first start or when the persisted
// catalog is missing or unreadable.
var DefaultDishes = []Dish{
	{
		ID:          "default-lentejas",
		Name:        "Lentejas con chorizo",
		Country:     "España",
		Servings:    intPtr(4),
		PrepMinutes: intPtr(60),
		Difficulty:  DifficultyMedium,
		Course:      CourseSingle,
		ValidFor:    []Occasion{OccasionLunch},
		Ingredients: []Ingredient{
			{Name: "Lentejas", Quantity: 400, Unit: "gr", CategoryHint: "legumbres"},
			{Name: "Chorizo", Quantity: 150, Unit: "gr", CategoryHint: "carne"},
			{Name: "Cebolla", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Zanahoria", Quantity: 2, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Sal", Quantity: 1, Unit: "pizcas", Optional: true},
		},
		Instructions: Instructions{Mode: InstructionsText, Text: "Cocer todo a fuego lento durante una hora."},
	},
	{
		ID:          "default-ensalada",
		Name:        "Ensalada mixta",
		Country:     "España",
		Servings:    intPtr(2),
		PrepMinutes: intPtr(15),
		Difficulty:  DifficultyEasy,
		Course:      CourseStarter,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Lechuga", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Tomate", Quantity: 2, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Aceitunas", Quantity: 50, Unit: "gr", CategoryHint: "despensa"},
			{Name: "Aceite de oliva", Quantity: 2, Unit: "cucharadas", CategoryHint: "despensa", Optional: true},
		},
		Instructions: Instructions{Mode: InstructionsSteps, Steps: []string{"Lavar y cortar las verduras.", "Mezclar y aliñar."}},
	},
	{
		ID:          "default-gazpacho",
		Name:        "Gazpacho",
		Country:     "España",
		Servings:    intPtr(4),
		PrepMinutes: intPtr(20),
		Difficulty:  DifficultyEasy,
		Course:      CourseStarter,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Tomate", Quantity: 1, Unit: "kg", CategoryHint: "verdura"},
			{Name: "Pepino", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Pimiento", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Ajo", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
		},
		Instructions: Instructions{Mode: InstructionsText, Text: "Triturar todos los ingredientes y servir frío."},
	},
	{
		ID:          "default-pollo-asado",
		Name:        "Pollo asado con patatas",
		Country:     "España",
		Servings:    intPtr(4),
		PrepMinutes: intPtr(75),
		Difficulty:  DifficultyMedium,
		Course:      CourseMain,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Pollo", Quantity: 1.5, Unit: "kg", CategoryHint: "carne"},
			{Name: "Patata", Quantity: 1, Unit: "kg", CategoryHint: "verdura"},
			{Name: "Limón", Quantity: 1, Unit: "unidades", CategoryHint: "fruta"},
		},
		Instructions: Instructions{Mode: InstructionsSteps, Steps: []string{"Precalentar el horno a 200º.", "Hornear el pollo con las patatas 70 minutos."}},
	},
	{
		ID:          "default-merluza",
		Name:        "Merluza a la plancha",
		Country:     "España",
		Servings:    intPtr(2),
		PrepMinutes: intPtr(20),
		Difficulty:  DifficultyEasy,
		Course:      CourseMain,
		ValidFor:    []Occasion{OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Merluza", Quantity: 400, Unit: "gr", CategoryHint: "pescado"},
			{Name: "Ajo", Quantity: 2, Unit: "unidades", CategoryHint: "verdura"},
			{Name: "Perejil", Quantity: 1, Unit: "pizcas", CategoryHint: "verdura", Optional: true},
		},
		Instructions: Instructions{Mode: InstructionsText, Text: "Hacer a la plancha con un refrito de ajo y perejil."},
	},
	{
		ID:          "default-tortilla",
		Name:        "Tortilla de patatas",
		Country:     "España",
		Servings:    intPtr(4),
		PrepMinutes: intPtr(40),
		Difficulty:  DifficultyMedium,
		Course:      CourseSingle,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Huevo", Quantity: 6, Unit: "unidades", CategoryHint: "huevos"},
			{Name: "Patata", Quantity: 800, Unit: "gr", CategoryHint: "verdura"},
			{Name: "Cebolla", Quantity: 1, Unit: "unidades", CategoryHint: "verdura"},
		},
		Allergens:    []string{"Huevos"},
		Instructions: Instructions{Mode: InstructionsSteps, Steps: []string{"Freír las patatas y la cebolla.", "Mezclar con el huevo batido.", "Cuajar por ambos lados."}},
	},
	{
		ID:          "default-flan",
		Name:        "Flan de huevo",
		Country:     "España",
		Servings:    intPtr(6),
		PrepMinutes: intPtr(50),
		Difficulty:  DifficultyMedium,
		Course:      CourseDessert,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Huevo", Quantity: 4, Unit: "unidades", CategoryHint: "huevos"},
			{Name: "Leche", Quantity: 500, Unit: "ml", CategoryHint: "lácteos"},
			{Name: "Azúcar", Quantity: 150, Unit: "gr", CategoryHint: "repostería"},
		},
		Allergens:    []string{"Huevos", "Lácteos"},
		Instructions: Instructions{Mode: InstructionsText, Text: "Hacer un caramelo, mezclar y cuajar al baño maría."},
	},
	{
		ID:          "default-fruta",
		Name:        "Fruta de temporada",
		Servings:    intPtr(1),
		PrepMinutes: intPtr(5),
		Difficulty:  DifficultyEasy,
		Course:      CourseDessert,
		ValidFor:    []Occasion{OccasionLunch, OccasionDinner},
		Ingredients: []Ingredient{
			{Name: "Piña", Quantity: 1, Unit: "unidades", CategoryHint: "fruta"},
		},
		Instructions: Instructions{Mode: InstructionsText, Text: "Pelar y servir."},
	},
}

// DefaultUtensils seeds the utensil suggestion list.
var DefaultUtensils = []string{
	"Batidora", "Cazuela", "Cuchillo cebollero", "Horno", "Olla exprés",
	"Sartén", "Tabla de cortar",
}
