package store

import (
	"fmt"

	"github.com/celulaviver/internal/model"
)

type seed struct {
	name, leader, host, trainee, team, address string
	kind                                       model.CellType
	region                                     string
}

var seeds = []seed{
	{"Visão de Águia (Fabiana)", "Fabiana Carla", "Igreja", "Em treinamento", "Equipe A", "Rio Negro 905, Dom Bosco | Betim MG", model.CellTypeAdulto, "Dom Bosco"},
	{"Visão de Águia (Lurdinha)", "Lurdinha", "Casa Lurdinha", "N/A", "Equipe B", "Rua: Aurioca 81, Dom Bosco | Betim MG", model.CellTypeAdulto, "Dom Bosco"},
	{"Guerreiros de Jesus", "Humberto", "Casa Humberto", "N/A", "Equipe C", "Rua Av Dom Bosco, n 60. Dom Bosco – Betim MG", model.CellTypeAdulto, "Dom Bosco"},
	{"Conexão Jovem", "Jane Kelly", "Casa Jane", "N/A", "Equipe Jovem", "Rua Domingos Belém 402, Dom Bosco | Betim MG", model.CellTypeJovem, "Dom Bosco"},
	{"Célula Cristo Viver", "Ricardo Motta", "N/A", "N/A", "Equipe Jovem B", "Rua: São Geraldo, 612 Dom Bosco – Betim MG", model.CellTypeJovem, "Dom Bosco"},
	{"Fé em Ação", "Anderson Daniel", "Casa Anderson", "N/A", "Equipe D", "Av: Havana 61, Duque de Caxias | Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"Célula Unânimes", "Robson Tavares", "N/A", "N/A", "Equipe E", "Rua Dama da Noite 193 B, Alterosas 2°C, – Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"A Forja", "Jonathan Henrique", "N/A", "N/A", "Equipe F", "Rua Cravinas 301 bairro Alterosa 2ª seção | Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"Visão de Águia (Geraldo)", "Geraldo Henrique", "N/A", "N/A", "Equipe G", "Borboleta 200, Jardim Alterosas 2° seção | Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"Começo de uma nova história", "Fabiano", "N/A", "N/A", "Equipe H", "Rua Borboleta 200 alterosa 2 seção – Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"Célula Luz do Mundo", "Márcia Antônia", "N/A", "N/A", "Equipe Juvenil", "Rua Dom Afonso Henrique 539, Jardim Alterosas 1 seção – Betim MG", model.CellTypeJuvenil, "Alterosas"},
	{"Visão de Águia (Rodrigues)", "Fabiana Rodrigues", "N/A", "N/A", "Equipe I", "Borboleta 200, Jardim Alterosas 2° seção | Betim MG", model.CellTypeAdulto, "Alterosas"},
	{"Célula Ágape", "Pedro", "N/A", "N/A", "Equipe Jovem C", "Rua Sapatinho, n 120. Jardim das Alterosas – Betim MG", model.CellTypeJovem, "Alterosas"},
	{"Filhos Perdidos", "Karen", "N/A", "N/A", "Equipe Jovem D", "Rua dama da noite 279 , jardim alterosa 2º seção – Betim MG", model.CellTypeJovem, "Alterosas"},
	{"Célula Visceral", "Gilson Nascimento", "N/A", "N/A", "Equipe K", "Rua Rio Amapá 456A Campos Elíseos – Betim MG", model.CellTypeAdulto, "Campos Elíseos"},
	{"Coração do Pai", "Jhonatas Cristian", "N/A", "N/A", "Equipe L", "França 315, Marquês Industrial / São Joaquim de Bicas MG", model.CellTypeAdulto, "Marquês Industrial"},
}

// InitialCells 返回后端尚无数据时使用的默认小组列表
func InitialCells() []model.Cell {
	cells := make([]model.Cell, 0, len(seeds))
	for i, s := range seeds {
		cells = append(cells, model.Cell{
			ID:        fmt.Sprintf("%d", i+1),
			Name:      s.name,
			Leader:    s.leader,
			Host:      s.host,
			Trainee:   s.trainee,
			Secretary: "N/A",
			Team:      []string{s.team},
			Address:   s.address,
			Type:      s.kind,
			Day:       "Quinta-Feira",
			Time:      "20:00 - 21:00",
			Region:    s.region,
			Phone:     fmt.Sprintf("319%08d", i+1),
		})
	}
	return cells
}
