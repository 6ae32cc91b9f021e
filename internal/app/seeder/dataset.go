package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Dataset is a directory snapshot to load. Rows reference each other by
// natural key (activity name, building address) since ids are assigned by
// the database.
type Dataset struct {
	Activities []ActivityRow `yaml:"activities"`
	Buildings  []BuildingRow `yaml:"buildings"`
	Companies  []CompanyRow  `yaml:"companies"`
}

// ActivityRow is one activity. Parent must appear earlier in the list.
type ActivityRow struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

// BuildingRow is one building.
type BuildingRow struct {
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// CompanyRow is one company with its phones and activity names.
type CompanyRow struct {
	Name       string   `yaml:"name"`
	Building   string   `yaml:"building"`
	Phones     []string `yaml:"phones"`
	Activities []string `yaml:"activities"`
}

// LoadDataset reads a dataset from a YAML file.
func LoadDataset(path string) (*Dataset, error) {
	var ds Dataset
	if err := cleanenv.ReadConfig(path, &ds); err != nil {
		return nil, fmt.Errorf("seeder dataset: read %s: %w", path, err)
	}
	return &ds, nil
}

// DemoDataset returns the built-in demo directory: a two-level taxonomy,
// five buildings in central Moscow and eight companies.
func DemoDataset() *Dataset {
	return &Dataset{
		Activities: []ActivityRow{
			{Name: "IT и технологии"},
			{Name: "Торговля"},
			{Name: "Услуги"},
			{Name: "Производство"},

			{Name: "Разработка ПО", Parent: "IT и технологии"},
			{Name: "Веб-разработка", Parent: "IT и технологии"},
			{Name: "Мобильная разработка", Parent: "IT и технологии"},
			{Name: "Кибербезопасность", Parent: "IT и технологии"},

			{Name: "Розничная торговля", Parent: "Торговля"},
			{Name: "Оптовая торговля", Parent: "Торговля"},
			{Name: "Интернет-магазин", Parent: "Торговля"},

			{Name: "Юридические услуги", Parent: "Услуги"},
			{Name: "Консалтинг", Parent: "Услуги"},
			{Name: "Образовательные услуги", Parent: "Услуги"},
			{Name: "Медицинские услуги", Parent: "Услуги"},

			{Name: "Пищевая промышленность", Parent: "Производство"},
			{Name: "Машиностроение", Parent: "Производство"},
			{Name: "Легкая промышленность", Parent: "Производство"},
		},
		Buildings: []BuildingRow{
			{Address: "ул. Ленина, д. 10", Latitude: 55.7558, Longitude: 37.6173},
			{Address: "пр. Мира, д. 25", Latitude: 55.7818, Longitude: 37.6327},
			{Address: "ул. Пушкина, д. 5", Latitude: 55.7654, Longitude: 37.6056},
			{Address: "ул. Гагарина, д. 15", Latitude: 55.7412, Longitude: 37.6259},
			{Address: "пр. Ленинградский, д. 40", Latitude: 55.7964, Longitude: 37.5355},
		},
		Companies: []CompanyRow{
			{
				Name:       "ТехноСофт",
				Building:   "ул. Ленина, д. 10",
				Phones:     []string{"+7-999-123-45-67", "+7-495-123-45-67"},
				Activities: []string{"Разработка ПО", "Веб-разработка"},
			},
			{
				Name:       "МегаМаркет",
				Building:   "пр. Мира, д. 25",
				Phones:     []string{"+7-999-234-56-78"},
				Activities: []string{"Розничная торговля", "Интернет-магазин"},
			},
			{
				Name:       "ЮрКонсалт",
				Building:   "ул. Пушкина, д. 5",
				Phones:     []string{"+7-495-234-56-78", "+7-999-345-67-89"},
				Activities: []string{"Юридические услуги"},
			},
			{
				Name:       "ПрогрессТех",
				Building:   "ул. Гагарина, д. 15",
				Phones:     []string{"+7-499-345-67-89"},
				Activities: []string{"Машиностроение"},
			},
			{
				Name:       "ИТРешения",
				Building:   "ул. Ленина, д. 10",
				Phones:     []string{"+7-495-456-78-90"},
				Activities: []string{"Разработка ПО", "Мобильная разработка", "Кибербезопасность"},
			},
			{
				Name:       "Учебный Центр",
				Building:   "пр. Ленинградский, д. 40",
				Phones:     []string{"+7-499-567-89-01", "+7-999-456-78-90"},
				Activities: []string{"Образовательные услуги"},
			},
			{
				Name:       "МедСервис",
				Building:   "ул. Пушкина, д. 5",
				Phones:     []string{"+7-495-678-90-12"},
				Activities: []string{"Медицинские услуги"},
			},
			{
				Name:       "ПромТорг",
				Building:   "пр. Мира, д. 25",
				Phones:     []string{"+7-499-789-01-23"},
				Activities: []string{"Оптовая торговля"},
			},
		},
	}
}
