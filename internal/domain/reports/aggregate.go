package reports

import (
	"math"
	"sort"
	"strings"

	"vet-clinic-records/internal/domain/records"
)

const (
	DefaultTopMedications = 10
	noSpecialty           = "Sin especialidad"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthlyVolumeByMonth cuenta atenciones por mes y promedia su costo total
// (consulta + procedimientos).
func MonthlyVolumeByMonth(recs []records.ClinicalRecord) []MonthlyVolume {
	type acc struct {
		count int
		sum   float64
	}
	stats := map[string]*acc{}
	for _, rec := range recs {
		key := records.MonthKey(rec.Time)
		a, ok := stats[key]
		if !ok {
			a = &acc{}
			stats[key] = a
		}
		a.count++
		a.sum += rec.TotalCost()
	}

	out := make([]MonthlyVolume, 0, len(stats))
	for month, a := range stats {
		out = append(out, MonthlyVolume{
			Month:    month,
			Visits:   a.count,
			AvgSpend: round2(a.sum / float64(a.count)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// SpecialtyDistribution suma uno por cada par (procedimiento, médico asignado).
// Procedimientos sin médicos no cuentan.
func SpecialtyDistribution(recs []records.ClinicalRecord) []SpecialtyCount {
	idx := map[string]int{}
	out := []SpecialtyCount{}
	for _, rec := range recs {
		for _, p := range rec.Procedures {
			for _, d := range p.Doctors {
				spec := strings.TrimSpace(d.Specialty)
				if spec == "" {
					spec = noSpecialty
				}
				i, ok := idx[spec]
				if !ok {
					i = len(out)
					idx[spec] = i
					out = append(out, SpecialtyCount{Specialty: spec})
				}
				out[i].Total++
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// TopMedications cuenta etiquetas de medicamento tal cual (sin espacios
// alrededor, con la dosis) para que coincidan con el catálogo.
func TopMedications(recs []records.ClinicalRecord, limit int) []MedicationCount {
	if limit < 1 {
		limit = DefaultTopMedications
	}
	idx := map[string]int{}
	out := []MedicationCount{}
	for _, rec := range recs {
		for _, p := range rec.Procedures {
			for _, m := range p.Medications {
				name := strings.TrimSpace(m)
				if name == "" {
					continue
				}
				i, ok := idx[name]
				if !ok {
					i = len(out)
					idx[name] = i
					out = append(out, MedicationCount{Medication: name})
				}
				out[i].Count++
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RevenueVsCost compara ingresos con costo de medicamentos por mes.
// Medicamentos fuera de costs valen 0. ganancia se calcula sobre los valores
// ya redondeados para que ingresos - costeMeds == ganancia en la respuesta.
func RevenueVsCost(recs []records.ClinicalRecord, costs map[string]float64) []MonthlyBalance {
	type acc struct {
		revenue, medCost float64
	}
	stats := map[string]*acc{}
	for _, rec := range recs {
		key := records.MonthKey(rec.Time)
		a, ok := stats[key]
		if !ok {
			a = &acc{}
			stats[key] = a
		}
		a.revenue += rec.TotalCost()
		for _, p := range rec.Procedures {
			for _, m := range p.Medications {
				a.medCost += costs[strings.TrimSpace(m)]
			}
		}
	}

	out := make([]MonthlyBalance, 0, len(stats))
	for month, a := range stats {
		revenue := round2(a.revenue)
		medCost := round2(a.medCost)
		out = append(out, MonthlyBalance{
			Month:   month,
			Revenue: revenue,
			MedCost: medCost,
			Profit:  round2(revenue - medCost),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// VaccineDemandByMonth cuenta aplicaciones por (mes, vacuna). Orden: mes
// ascendente, luego aplicaciones descendente; empates por primera aparición.
func VaccineDemandByMonth(recs []records.ClinicalRecord) []VaccineDemand {
	type key struct{ month, vaccine string }
	idx := map[key]int{}
	out := []VaccineDemand{}
	for _, rec := range recs {
		month := records.MonthKey(rec.Time)
		for _, v := range rec.Vaccines {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			k := key{month, v}
			i, ok := idx[k]
			if !ok {
				i = len(out)
				idx[k] = i
				out = append(out, VaccineDemand{Month: month, Vaccine: v})
			}
			out[i].Applications++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Applications > out[j].Applications
	})
	return out
}
