// Package catalog holds the fixed candidate meal list. The data is static,
// read-only, and identical across all requests; selection never mutates it.
package catalog

import "github.com/ksaeil2001/capss/internal/domain"

var meals = []domain.Meal{
	{
		ID:          "burger-1",
		Name:        "데리버거",
		Type:        "lunch",
		Calories:    348,
		Protein:     12,
		Carbs:       35,
		Fat:         15,
		Ingredients: []string{"쇠고기 패티", "양상추", "토마토", "소스", "번", "쇠고기 - 호주산"},
		Recipe:      "쇠고기 패티를 구워 양상추, 토마토, 데리야키 소스와 함께 번에 넣습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1550317138-10000687a72b",
		Tags:        []string{"패스트푸드", "햄버거", "쇠고기"},
		Score:       80,
		Price:       4500,
		Nutrition: &domain.Nutrition{
			Calories: 348, Protein: 12, Carbs: 35, Fat: 15,
			Sodium: 590, Sugar: 10, SaturatedFat: 4.9,
		},
	},
	{
		ID:          "burger-2",
		Name:        "치킨버거",
		Type:        "lunch",
		Calories:    355,
		Protein:     15,
		Carbs:       36,
		Fat:         16,
		Ingredients: []string{"닭고기 패티", "양상추", "소스", "번", "닭고기 - 브라질산"},
		Recipe:      "닭고기 패티를 튀겨 양상추, 소스와 함께 번에 넣습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
		Tags:        []string{"패스트푸드", "햄버거", "닭고기"},
		Score:       81,
		Price:       4000,
		Nutrition: &domain.Nutrition{
			Calories: 355, Protein: 15, Carbs: 36, Fat: 16,
			Sodium: 620, Sugar: 8, SaturatedFat: 3.8,
		},
	},
	{
		ID:          "burger-3",
		Name:        "티렉스버거",
		Type:        "lunch",
		Calories:    463,
		Protein:     26,
		Carbs:       40,
		Fat:         22,
		Ingredients: []string{"특대 닭고기 패티", "양상추", "토마토", "소스", "번", "닭고기 - 브라질산"},
		Recipe:      "특대 닭고기 패티를 튀겨 양상추, 토마토, 소스와 함께 번에 넣습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1561758033-d89a9ad46330",
		Tags:        []string{"패스트푸드", "햄버거", "닭고기", "고단백"},
		Score:       85,
		Price:       5400,
		Nutrition: &domain.Nutrition{
			Calories: 463, Protein: 26, Carbs: 40, Fat: 22,
			Sodium: 830, Sugar: 7, SaturatedFat: 5.0,
		},
	},
	{
		ID:          "burger-4",
		Name:        "한우불고기버거",
		Type:        "lunch",
		Calories:    572,
		Protein:     23,
		Carbs:       45,
		Fat:         30,
		Ingredients: []string{"한우 불고기 패티", "양상추", "토마토", "소스", "번", "쇠고기 - 국내산 한우"},
		Recipe:      "한우 불고기 패티를 구워 양상추, 토마토, 불고기 소스와 함께 번에 넣습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9",
		Tags:        []string{"패스트푸드", "햄버거", "한우", "고급"},
		Score:       93,
		Price:       8500,
		Nutrition: &domain.Nutrition{
			Calories: 572, Protein: 23, Carbs: 45, Fat: 30,
			Sodium: 800, Sugar: 15, SaturatedFat: 12.0,
		},
	},
	{
		ID:          "burger-5",
		Name:        "더블한우불고기버거",
		Type:        "lunch",
		Calories:    802,
		Protein:     39,
		Carbs:       52,
		Fat:         45,
		Ingredients: []string{"한우 불고기 패티 2장", "양상추", "토마토", "치즈", "소스", "번", "쇠고기 - 국내산 한우"},
		Recipe:      "한우 불고기 패티 2장과 치즈, 양상추, 토마토, 소스를 번에 넣습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1586190848861-99aa4a171e90",
		Tags:        []string{"패스트푸드", "햄버거", "한우", "고급", "고단백"},
		Score:       90,
		Price:       12000,
		Nutrition: &domain.Nutrition{
			Calories: 802, Protein: 39, Carbs: 52, Fat: 45,
			Sodium: 1150, Sugar: 18, SaturatedFat: 20.0,
		},
	},
	{
		ID:          "food-1",
		Name:        "그릴드 치킨 샐러드",
		Type:        "lunch",
		Calories:    320,
		Protein:     28,
		Carbs:       12,
		Fat:         18,
		Ingredients: []string{"닭가슴살 100g", "양상추", "방울토마토", "올리브 오일", "레몬즙", "아보카도"},
		Recipe:      "닭가슴살을 양념하여 그릴에 굽고, 샐러드 채소와 함께 올리브 오일과 레몬즙으로 드레싱합니다.",
		ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
		Tags:        []string{"고단백", "저탄수화물", "다이어트"},
		Score:       92,
		Price:       8500,
		Nutrition:   &domain.Nutrition{Calories: 320, Protein: 28, Carbs: 12, Fat: 18},
	},
	{
		ID:          "food-2",
		Name:        "연어 포케 보울",
		Type:        "dinner",
		Calories:    420,
		Protein:     24,
		Carbs:       45,
		Fat:         15,
		Ingredients: []string{"연어 100g", "현미밥", "아보카도", "오이", "당근", "간장", "참기름"},
		Recipe:      "현미밥을 깔고 연어와 채소를 올린 후 간장과 참기름으로 간을 합니다.",
		ImageURL:    "https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
		Tags:        []string{"오메가3", "건강식", "고단백"},
		Score:       95,
		Price:       12000,
		Nutrition:   &domain.Nutrition{Calories: 420, Protein: 24, Carbs: 45, Fat: 15},
	},
	{
		ID:          "food-3",
		Name:        "프로틴 그릭 요거트",
		Type:        "breakfast",
		Calories:    240,
		Protein:     22,
		Carbs:       16,
		Fat:         8,
		Ingredients: []string{"그릭 요거트 200g", "프로틴 파우더", "블루베리", "아몬드", "꿀"},
		Recipe:      "그릭 요거트에 프로틴 파우더를 섞고 블루베리와 아몬드를 토핑합니다.",
		ImageURL:    "https://images.unsplash.com/photo-1505253758473-96b7015fcd40",
		Tags:        []string{"아침식사", "고단백", "간편식"},
		Score:       88,
		Price:       5500,
		Nutrition:   &domain.Nutrition{Calories: 240, Protein: 22, Carbs: 16, Fat: 8},
	},
	{
		ID:          "food-4",
		Name:        "클래식 치즈버거",
		Type:        "lunch",
		Calories:    650,
		Protein:     35,
		Carbs:       40,
		Fat:         38,
		Ingredients: []string{"쇠고기 패티 150g", "통밀 번", "체다치즈", "양상추", "토마토", "양파", "피클"},
		Recipe:      "쇠고기 패티를 그릴에 구워 통밀 번과 함께 모든 재료를 쌓아올립니다.",
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
		Tags:        []string{"햄버거", "고단백", "간편식"},
		Score:       85,
		Price:       9800,
		Nutrition:   &domain.Nutrition{Calories: 650, Protein: 35, Carbs: 40, Fat: 38},
	},
	{
		ID:          "food-5",
		Name:        "참치 아보카도 토스트",
		Type:        "lunch",
		Calories:    380,
		Protein:     22,
		Carbs:       28,
		Fat:         20,
		Ingredients: []string{"통밀 식빵", "참치캔", "아보카도", "레몬즙", "적양파", "통밀 식빵"},
		Recipe:      "통밀 식빵을 구워 참치와 아보카도를 섞은 혼합물을 올립니다.",
		ImageURL:    "https://images.unsplash.com/photo-1603046891745-6239338bd6a6",
		Tags:        []string{"오메가3", "건강식", "간편식"},
		Score:       89,
		Price:       7500,
		Nutrition:   &domain.Nutrition{Calories: 380, Protein: 22, Carbs: 28, Fat: 20},
	},
	{
		ID:          "food-6",
		Name:        "비프 타코 보울",
		Type:        "dinner",
		Calories:    550,
		Protein:     30,
		Carbs:       45,
		Fat:         25,
		Ingredients: []string{"쇠고기 다진 고기", "검은콩", "현미밥", "아보카도", "살사 소스", "양상추", "라임즙"},
		Recipe:      "다진 쇠고기를 양념해 볶고, 현미밥과 함께 모든 재료를 그릇에 담습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1551326844-4df70f78d0e9",
		Tags:        []string{"멕시칸", "고단백", "건강식"},
		Score:       91,
		Price:       11000,
		Nutrition:   &domain.Nutrition{Calories: 550, Protein: 30, Carbs: 45, Fat: 25},
	},
	{
		ID:          "food-7",
		Name:        "채소 곤약 파스타",
		Type:        "dinner",
		Calories:    280,
		Protein:     15,
		Carbs:       18,
		Fat:         16,
		Ingredients: []string{"곤약 파스타", "방울토마토", "버섯", "올리브 오일", "파르메산 치즈", "바질"},
		Recipe:      "곤약 파스타를 데친 후 소금물에 씻고, 올리브 오일에 토마토와 버섯을 볶아 소스를 만들어 버무립니다.",
		ImageURL:    "https://images.unsplash.com/photo-1473093226795-af9932fe5856",
		Tags:        []string{"파스타", "저칼로리", "다이어트"},
		Score:       87,
		Price:       8800,
		Nutrition:   &domain.Nutrition{Calories: 280, Protein: 15, Carbs: 18, Fat: 16},
	},
	{
		ID:          "food-8",
		Name:        "블루베리 오트밀",
		Type:        "breakfast",
		Calories:    310,
		Protein:     12,
		Carbs:       45,
		Fat:         8,
		Ingredients: []string{"오트밀", "우유", "블루베리", "아몬드", "꿀", "시나몬 가루"},
		Recipe:      "오트밀을 우유와 함께 끓여 블루베리와 아몬드, 꿀을 넣고 시나몬 가루로 마무리합니다.",
		ImageURL:    "https://images.unsplash.com/photo-1517673132405-a56a62b18caf",
		Tags:        []string{"아침식사", "식이섬유", "건강식"},
		Score:       90,
		Price:       6000,
		Nutrition:   &domain.Nutrition{Calories: 310, Protein: 12, Carbs: 45, Fat: 8},
	},
	{
		ID:          "food-9",
		Name:        "닭가슴살 브리또 보울",
		Type:        "lunch",
		Calories:    480,
		Protein:     35,
		Carbs:       50,
		Fat:         12,
		Ingredients: []string{"닭가슴살", "현미밥", "검은콩", "옥수수", "사워크림", "살사 소스", "아보카도"},
		Recipe:      "닭가슴살을 구워 썰고, 현미밥과 채소, 소스를 그릇에 담습니다.",
		ImageURL:    "https://images.unsplash.com/photo-1543352634-a1c51d9f1fa7",
		Tags:        []string{"멕시칸", "고단백", "건강식"},
		Score:       93,
		Price:       10500,
		Nutrition:   &domain.Nutrition{Calories: 480, Protein: 35, Carbs: 50, Fat: 12},
	},
	{
		ID:          "food-10",
		Name:        "연어 아보카도 롤",
		Type:        "dinner",
		Calories:    390,
		Protein:     20,
		Carbs:       40,
		Fat:         18,
		Ingredients: []string{"연어", "김", "현미밥", "아보카도", "오이", "간장", "와사비"},
		Recipe:      "김 위에 현미밥을 펴고 연어와 아보카도, 오이를 올려 돌돌 말아 자릅니다.",
		ImageURL:    "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
		Tags:        []string{"일식", "오메가3", "건강식"},
		Score:       94,
		Price:       13000,
		Nutrition:   &domain.Nutrition{Calories: 390, Protein: 20, Carbs: 40, Fat: 18},
	},
}

// Meals returns a deep copy of the catalog. Callers can sort and relabel the
// returned slice freely.
func Meals() []domain.Meal {
	out := make([]domain.Meal, len(meals))
	for i, m := range meals {
		out[i] = m.Clone()
	}
	return out
}

// Size returns the number of catalog entries.
func Size() int {
	return len(meals)
}
