package norm

import "time"

const demoFileURL = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"

// DemoSeed returns the norms used to seed the demo store the first time the
// collection is needed.
func DemoSeed() []Norm {
	return []Norm{
		{
			ID:          "1",
			Title:       "Manual de Identidad Corporativa",
			Code:        "POL-MKT-001",
			Version:     "2.3",
			UpdatedAt:   time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			Area:        "Comercial",
			Tags:        []string{"Branding", "Visual"},
			Description: "Guía oficial para el uso de marca y comunicación visual en locales.",
			Status:      StatusPublished,
			FileURL:     demoFileURL,
		},
		{
			ID:          "2",
			Title:       "Política de Control de Inventario",
			Code:        "NOR-OPS-012",
			Version:     "1.0",
			UpdatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Area:        "Operaciones",
			Tags:        []string{"Stock", "Logística"},
			Description: "Procedimiento para el conteo cíclico y auditoría de mercadería.",
			Status:      StatusPublished,
			FileURL:     demoFileURL,
		},
	}
}
