package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/dnicolas/tienda/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// Seed is the built-in catalog used when no external source is configured
// and to populate an empty database on first run.
func Seed() []domain.Product {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	return []domain.Product{
		{
			ID: uuid.New(), Name: "Alcohol Antiséptico 700ml", Brand: "JGB", Category: "Farmacia",
			Description:  "Alcohol al 70% para desinfección de piel y superficies.",
			DetailedDesc: "Alcohol etílico al 70%, indicado para la antisepsia de la piel sana y la desinfección de superficies. Presentación de 700ml con tapa dosificadora.",
			Price:        8500, OriginalPrice: ptr(9900), IsOnSale: true,
			Images: []string{"/public/img/alcohol-700.jpg"},
			Reviews: []domain.Review{
				{Author: "Marta R.", Rating: 5, Comment: "Llegó rápido y bien sellado.", Date: day(3)},
				{Author: "Julián", Rating: 4, Comment: "Buen precio comparado con la droguería.", Date: day(9)},
			},
		},
		{
			ID: uuid.New(), Name: "Jabón Líquido Antibacterial 1L", Brand: "Protex", Category: "Aseo Personal",
			Description:  "Jabón líquido para manos con agentes antibacteriales.",
			DetailedDesc: "Jabón líquido con avena, elimina el 99.9% de las bacterias. Repuesto de 1 litro ideal para dispensadores de baño y cocina.",
			Price:        15200,
			Images:       []string{"/public/img/jabon-protex.jpg"},
			Reviews: []domain.Review{
				{Author: "Carolina", Rating: 5, Comment: "Rinde muchísimo.", Date: day(12)},
			},
		},
		{
			ID: uuid.New(), Name: "Límpido Blanqueador 2L", Brand: "Clorox", Category: "Limpieza",
			Description:  "Blanqueador desinfectante a base de hipoclorito.",
			DetailedDesc: "Hipoclorito de sodio al 5.25%. Desinfecta baños, cocinas y ropa blanca. Garrafa de 2 litros.",
			Price:        7800,
			Images:       []string{"/public/img/clorox-2l.jpg"},
		},
		{
			ID: uuid.New(), Name: "Acetaminofén 500mg x 100", Brand: "MK", Category: "Farmacia",
			Description:  "Analgésico y antipirético de venta libre.",
			DetailedDesc: "Caja por 100 tabletas de 500mg. Alivio de dolores leves y fiebre. Venta libre, leer indicaciones.",
			Price:        12000,
			Images:       []string{"/public/img/acetaminofen-mk.jpg"},
			Reviews: []domain.Review{
				{Author: "Don Pedro", Rating: 5, Comment: "El de siempre, original.", Date: day(1)},
			},
		},
		{
			ID: uuid.New(), Name: "Detergente en Polvo 4kg", Brand: "Ariel", Category: "Limpieza",
			Description:  "Detergente concentrado para ropa blanca y de color.",
			DetailedDesc: "Poder quitamanchas en una sola lavada. Bolsa de 4kg rendidora, apta para lavadora y lavado a mano.",
			Price:        38900, OriginalPrice: ptr(45500), IsOnSale: true,
			Images: []string{"/public/img/ariel-4kg.jpg"},
		},
		{
			ID: uuid.New(), Name: "Pañitos Húmedos x80", Brand: "Winny", Category: "Bebés",
			Description:  "Toallitas húmedas sin alcohol para piel delicada.",
			DetailedDesc: "Paquete por 80 unidades con tapa. Sin alcohol ni parabenos, dermatológicamente probados.",
			Price:        9600,
			Images:       []string{"/public/img/panitos-winny.jpg"},
		},
		{
			ID: uuid.New(), Name: "Suero Oral Sabor Naranja", Brand: "Pedialyte", Category: "Farmacia",
			Description:  "Solución de rehidratación oral, botella 500ml.",
			DetailedDesc: "Reposición de líquidos y electrolitos. Mantener refrigerado después de abierto y consumir en 24 horas.",
			Price:        11300,
			Images:       []string{"/public/img/pedialyte.jpg"},
		},
		{
			ID: uuid.New(), Name: "Papel Higiénico Triple Hoja x12", Brand: "Familia", Category: "Hogar",
			Description:  "Rollos triple hoja, paquete familiar por 12.",
			DetailedDesc: "Paquete por 12 rollos de 30m, triple hoja acolchada. Empaque reutilizable.",
			Price:        24500,
			Images:       []string{"/public/img/papel-familiar.jpg"},
			Reviews: []domain.Review{
				{Author: "Luisa F.", Rating: 4, Comment: "Buen tamaño de los rollos.", Date: day(20)},
			},
		},
	}
}
