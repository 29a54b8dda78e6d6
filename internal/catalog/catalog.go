// Package catalog содержит встроенный каталог растений: одиннадцать
// фиксированных записей с атрибутами ухода и отображаемыми полями.
// Каталог формируется один раз при старте процесса и не изменяется.
package catalog

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/flowerbud/internal/models"
)

// allPlants — полный каталог растений. Порядок записей значим:
// при равных баллах рекомендаций выигрывает растение, идущее раньше.
var allPlants = []models.Plant{
	{
		ID: "1", Name: "Aloe Vera", Price: 10, WaterWeeks: 4, Space: 2, Light: 3, Toxic: true, Outdoor: false,
		Image: "aloevera", LightIcon: "sun", PriceIcon: "pound", WaterIcon: "water",
		PriceBand: "1 - 10", SunLevel: "High", Height: "30–60 cm",
		Description:    "A popular houseplant that thrives indoors with minimal care. Aloe Vera prefers bright, indirect light and needs occasional watering, making it perfect for those seeking a low-maintenance, medicinal plant.",
		CommonIssues:   "Aloe Vera often experiences root rot and mushy leaves due to overwatering. It can also suffer from pale or weak leaves when exposed to insufficient sunlight or cold drafts.",
		IssueSolutions: "To prevent issues, water Aloe Vera sparingly, allowing the soil to dry out completely between waterings. Place it in bright, indirect sunlight and protect it from cold temperatures or drafts.",
	},
	{
		ID: "2", Name: "Areca Palm", Price: 30, WaterWeeks: 1, Space: 5, Light: 2, Toxic: false, Outdoor: true,
		Image: "arecapalm", LightIcon: "cloudsun", PriceIcon: "triplepound", WaterIcon: "triplewater",
		PriceBand: "20 - 30", SunLevel: "Medium", Height: "90–180 cm",
		Description:    "This indoor palm adds a tropical touch with its lush, feathery fronds. Areca Palms are great air purifiers and thrive in bright, indirect light, requiring moderate watering to keep their foliage vibrant.",
		CommonIssues:   "Areca Palm commonly has browning leaf tips caused by low humidity, underwatering, or nutrient deficiencies. The leaves may also scorch if the plant is exposed to direct sunlight for too long.",
		IssueSolutions: "Increase humidity around the plant, water regularly but avoid waterlogging, and feed with a balanced fertilizer during the growing season. Place in bright, indirect light to prevent leaf scorch.",
	},
	{
		ID: "3", Name: "Zanzibar Gem", Price: 20, WaterWeeks: 3, Space: 4, Light: 1, Toxic: true, Outdoor: false,
		Image: "zzplant", LightIcon: "cloud", PriceIcon: "doublepound", WaterIcon: "doublewater",
		PriceBand: "10 - 20", SunLevel: "Low", Height: "40–90 cm",
		Description:    "A nearly indestructible houseplant that tolerates low light and infrequent watering. The ZZ Plant's shiny, deep green leaves make it a stylish addition to any indoor space, especially for beginners.",
		CommonIssues:   "ZZ Plant often suffers from yellowing leaves due to overwatering or poor drainage. While it tolerates low light, insufficient light can slow its growth, making the stems leggy and weak.",
		IssueSolutions: "Water only when the soil is dry, and ensure the pot has good drainage. Place the ZZ Plant in moderate to low indirect light, and prune leggy stems to encourage fuller growth.",
	},
	{
		ID: "4", Name: "Spider Plant", Price: 10, WaterWeeks: 1, Space: 2, Light: 3, Toxic: false, Outdoor: false,
		Image: "spiderplant", LightIcon: "sun", PriceIcon: "pound", WaterIcon: "triplewater",
		PriceBand: "1 - 10", SunLevel: "High", Height: "30–60 cm",
		Description:    "An easy-to-care-for indoor plant that adapts well to different conditions. Spider Plants thrive in bright, indirect light and produce “babies” that can be propagated, making them ideal for hanging baskets.",
		CommonIssues:   "Spider Plants frequently develop brown leaf tips from fluoride in tap water or dry air. Overwatering can also cause root rot, while too much direct sunlight may scorch the leaves.",
		IssueSolutions: "Use distilled or rainwater to avoid fluoride, and increase humidity if air is dry. Water moderately, allowing the soil to dry slightly between waterings, and provide bright, indirect light.",
	},
	{
		ID: "5", Name: "Peace Lily", Price: 10, WaterWeeks: 1, Space: 2, Light: 3, Toxic: true, Outdoor: false,
		Image: "peacelily", LightIcon: "sun", PriceIcon: "pound", WaterIcon: "triplewater",
		PriceBand: "1 - 10", SunLevel: "High", Height: "45–90 cm",
		Description:    "A classic houseplant with white blooms that add elegance to any room. Peace Lilies thrive in low light and prefer moist soil, making them a favorite for darker corners and humid areas like bathrooms.",
		CommonIssues:   "Peace Lilies show drooping leaves and yellowing when underwatered. Brown leaf tips are often due to dry air or chemicals in tap water, while too much light can cause leaf burn.",
		IssueSolutions: "Keep soil consistently moist, but not soggy. Use filtered water to avoid chemicals and increase humidity around the plant. Place the Peace Lily in low to moderate indirect light for optimal growth.",
	},
	{
		ID: "6", Name: "Pansy Orchid", Price: 20, WaterWeeks: 1, Space: 2, Light: 3, Toxic: false, Outdoor: false,
		Image: "pansyorchid", LightIcon: "sun", PriceIcon: "doublepound", WaterIcon: "triplewater",
		PriceBand: "10 - 20", SunLevel: "High", Height: "30–60 cm",
		Description:    "This orchid variety brings unique beauty indoors with its colorful, pansy-like flowers. It prefers bright, indirect light and consistent watering, making it a charming but slightly demanding choice for orchid enthusiasts.",
		CommonIssues:   "Pansy Orchids are sensitive to temperature fluctuations and low humidity, leading to leaf problems. Overwatering can result in root rot, while lack of light may cause poor flowering and growth.",
		IssueSolutions: "Maintain a stable temperature and increase humidity with a humidifier or misting. Water only when the top inch of soil is dry, and provide bright, indirect light for healthy growth.",
	},
	{
		ID: "7", Name: "Succulent", Price: 10, WaterWeeks: 3, Space: 1, Light: 2, Toxic: true, Outdoor: false,
		Image: "succulent", LightIcon: "cloudsun", PriceIcon: "pound", WaterIcon: "doublewater",
		PriceBand: "1 - 10", SunLevel: "Medium", Height: "5–30 cm",
		Description:    "Perfect for sunny indoor spaces, succulents are drought-tolerant and require minimal care. Their diverse shapes and colors add visual interest to any room, with occasional watering needed for healthy growth.",
		CommonIssues:   "Succulents often face root rot due to overwatering. Insufficient light can cause stretching, while very dry conditions may result in wrinkled or shriveled leaves, affecting the plant's appearance and growth.",
		IssueSolutions: "Water sparingly, allowing the soil to dry out completely between waterings. Place the plant in bright, direct light for at least six hours daily, and ensure the pot has adequate drainage.",
	},
	{
		ID: "8", Name: "Bonsai", Price: 20, WaterWeeks: 1, Space: 1, Light: 2, Toxic: false, Outdoor: true,
		Image: "bonsai", LightIcon: "cloudsun", PriceIcon: "doublepound", WaterIcon: "triplewater",
		PriceBand: "10 - 20", SunLevel: "Medium", Height: "15–90 cm",
		Description:    "A captivating houseplant that brings nature’s grandeur indoors in miniature form. Bonsai trees require precise care, including pruning and regular watering, making them ideal for plant enthusiasts seeking a challenge.",
		CommonIssues:   "Bonsai trees are prone to root rot from overwatering or leaf drop from underwatering. They can also experience leaf burn from direct sunlight, and poor pruning may lead to uneven growth.",
		IssueSolutions: "Water Bonsai regularly, keeping the soil slightly moist but not soggy. Provide filtered light or partial shade, and prune regularly to maintain shape. Use well-draining soil to prevent waterlogging.",
	},
	{
		ID: "9", Name: "Maranta", Price: 10, WaterWeeks: 2, Space: 2, Light: 3, Toxic: false, Outdoor: false,
		Image: "maranta", LightIcon: "sun", PriceIcon: "pound", WaterIcon: "doublewater",
		PriceBand: "1 - 10", SunLevel: "High", Height: "30–45 cm",
		Description:    "Also known as the Prayer Plant, Maranta adds a dynamic touch to indoor décor with its colorful, folding leaves. It prefers indirect light and consistent moisture, thriving in humid indoor environments.",
		CommonIssues:   "Maranta may develop brown leaf tips or edges from low humidity or watering issues. The plant can also suffer from root rot due to overwatering and struggle in bright, direct sunlight.",
		IssueSolutions: "Increase humidity by misting or using a pebble tray. Water when the top inch of soil is dry, and place the plant in low to moderate indirect light for optimal health.",
	},
	{
		ID: "10", Name: "Chinese Evergreen", Price: 10, WaterWeeks: 1, Space: 2, Light: 2, Toxic: true, Outdoor: false,
		Image: "chineseevergreen", LightIcon: "cloudsun", PriceIcon: "pound", WaterIcon: "triplewater",
		PriceBand: "1 - 10", SunLevel: "Medium", Height: "30–90 cm",
		Description:    "A versatile houseplant that can tolerate low light and infrequent watering. Its colorful, variegated foliage makes it a great decorative choice for indoor spaces, even for those with little plant care experience.",
		CommonIssues:   "Chinese Evergreens are susceptible to root rot from overwatering and may develop brown leaf tips in dry air. They can also show leaf yellowing or scorched leaves if exposed to direct sunlight.",
		IssueSolutions: "Water moderately, allowing the soil to dry slightly between waterings, and increase humidity if necessary. Place the plant in low to medium indirect light, avoiding direct sun to prevent scorch.",
	},
	{
		ID: "11", Name: "Snake Plant", Price: 10, WaterWeeks: 4, Space: 2, Light: 2, Toxic: true, Outdoor: true,
		Image: "snakeplant", LightIcon: "cloudsun", PriceIcon: "pound", WaterIcon: "water",
		PriceBand: "1 - 10", SunLevel: "Medium", Height: "30–120 cm",
		Description:    "An excellent low-maintenance houseplant that tolerates neglect, low light, and dry conditions. The Snake Plant's upright leaves and air-purifying properties make it a fantastic choice for bedrooms or offices.",
		CommonIssues:   "Snake Plants are prone to root rot when overwatered and may develop wrinkled leaves in prolonged drought. Leaf edges can brown in cold drafts or under direct sun.",
		IssueSolutions: "Water sparingly, allowing the soil to dry out between waterings. Provide the plant with moderate indirect light, and ensure the pot has good drainage to avoid water accumulation at the roots.",
	},
}

// Provider адаптирует каталог к интерфейсам сервисов, которым нужен
// доступ к растениям через зависимость, а не через функции пакета.
type Provider struct{}

// All возвращает копию каталога в исходном порядке.
func (Provider) All() []models.Plant { return All() }

// FindByID возвращает растение по идентификатору.
func (Provider) FindByID(id string) (models.Plant, error) { return FindByID(id) }

// All возвращает копию каталога в исходном порядке.
func All() []models.Plant {
	plants := make([]models.Plant, len(allPlants))
	copy(plants, allPlants)
	return plants
}

// Len возвращает количество записей каталога.
func Len() int {
	return len(allPlants)
}

// FindByID возвращает растение по идентификатору. Для неизвестного
// идентификатора возвращается models.ErrPlantNotFound.
func FindByID(id string) (models.Plant, error) {
	const op = "catalog.FindByID"

	for _, plant := range allPlants {
		if plant.ID == id {
			return plant, nil
		}
	}
	return models.Plant{}, fmt.Errorf("%s: %q: %w", op, id, models.ErrPlantNotFound)
}

// SearchByName возвращает растения, название которых содержит запрос
// без учета регистра. Пустой запрос дает пустой результат.
func SearchByName(query string) []models.Plant {
	if query == "" {
		return nil
	}
	var found []models.Plant
	for _, plant := range allPlants {
		if strings.Contains(strings.ToLower(plant.Name), strings.ToLower(query)) {
			found = append(found, plant)
		}
	}
	return found
}
