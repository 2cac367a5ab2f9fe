package valuation

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/config"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/comparables"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/listings"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/postal"
)

// ListingStore is the boundary to the stored advert rows used by the
// zone-based pipeline.
type ListingStore interface {
	GetListingsByZone(zone string) ([]models.RawListing, error)
}

// Geocoder resolves a free-text address to coordinates. Optional; when
// absent the distance check is skipped.
type Geocoder interface {
	GeocodeAddress(street, postalCode, city string) (float64, float64, error)
}

// Valuator sequences the valuation pipeline: locate reference data, build
// and filter comparables, run the delegated strategy, fall back on failure,
// and normalize everything into one of the three result shapes. It never
// returns an error to the caller; every failure becomes a result.
type Valuator struct {
	logger    *logrus.Logger
	cfg       *config.Config
	generator *comparables.Generator
	strategy  Strategy
	fallback  Strategy
	store     ListingStore
	geocoder  Geocoder
	now       func() time.Time
}

// NewValuator wires the orchestrator. strategy is the delegated (LLM) path;
// store and geocoder may be nil, disabling the zone pipeline's real-data
// source and the address distance check respectively.
func NewValuator(cfg *config.Config, logger *logrus.Logger, generator *comparables.Generator, strategy Strategy, store ListingStore, geocoder Geocoder) *Valuator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Valuator{
		logger:    logger,
		cfg:       cfg,
		generator: generator,
		strategy:  strategy,
		fallback:  NewFallbackStrategy(),
		store:     store,
		geocoder:  geocoder,
		now:       time.Now,
	}
}

// GetPropertyValuation is the postal-code pipeline entry point.
func (v *Valuator) GetPropertyValuation(ctx context.Context, target models.PropertyInfo) (result *models.ValuationResult) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.WithField("panic", r).Error("Valuation pipeline failed unexpectedly")
			result = models.NewMissingFieldsResult(ErrServidorMsg)
			result.AvisoLegal = AvisoLegal
		}
	}()

	if missing := requiredFields(target); len(missing) > 0 {
		return models.NewMissingFieldsResult(missing...)
	}

	info := postal.GetPostalCodeInfo(target.PostalCode)
	if info == nil {
		v.logger.WithField("codigo_postal", target.PostalCode).Info("Unknown postal code, no comparables possible")
		return models.NewNoComparablesResult(SinComparablesMsg)
	}
	basePrice, ok := postal.BasePriceM2(target.PostalCode)
	if !ok {
		return models.NewNoComparablesResult(SinComparablesMsg)
	}
	if target.Distrito == "" {
		target.Distrito = info.Distrito
	}
	if target.Localidad == "" {
		target.Localidad = info.Localidad
	}

	v.checkAddressDistance(target, info)

	candidates := v.generator.GenerateSet(target, basePrice, info, v.cfg.Valuation.ComparableCount)
	comps := comparables.Filter(candidates, target, comparables.PostalCriteria())
	if len(comps) == 0 {
		return models.NewNoComparablesResult(SinComparablesMsg)
	}

	return v.valuate(ctx, target, comps)
}

// GetZoneValuation is the named-zone pipeline: resolve the zone from free
// text, pull stored adverts, extract their attributes and run the same
// validator and engine as the postal pipeline.
func (v *Valuator) GetZoneValuation(ctx context.Context, target models.PropertyInfo) (result *models.ValuationResult) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.WithField("panic", r).Error("Zone valuation pipeline failed unexpectedly")
			result = models.NewMissingFieldsResult(ErrServidorMsg)
			result.AvisoLegal = AvisoLegal
		}
	}()

	if target.Superficie <= 0 {
		return models.NewMissingFieldsResult("superficie_m2")
	}

	zone := postal.FindZoneByName(target.Direccion)
	if zone == "" {
		zone = postal.FindZoneByName(target.Distrito)
	}
	if zone == "" {
		v.logger.WithField("direccion", target.Direccion).Info("No known zone in address")
		return models.NewNoComparablesResult(SinComparablesMsg)
	}
	zinfo := postal.GetZoneInfo(zone)
	if target.Distrito == "" || target.Distrito != zinfo.Distrito {
		target.Distrito = zinfo.Distrito
	}
	if target.Localidad == "" {
		target.Localidad = zinfo.Localidad
	}

	comps, err := v.zoneComparables(target, zone, zinfo)
	if err != nil {
		v.logger.WithError(err).WithField("zona", zone).Error("Failed to fetch zone comparables")
		result = models.NewMissingFieldsResult(ErrServidorMsg)
		result.AvisoLegal = AvisoLegal
		return result
	}
	if len(comps) == 0 {
		return models.NewNoComparablesResult(SinComparablesMsg)
	}

	return v.valuate(ctx, target, comps)
}

// zoneComparables prefers stored adverts; without a store it synthesizes
// candidates from the zone's base price so the pipeline stays usable.
func (v *Valuator) zoneComparables(target models.PropertyInfo, zone string, zinfo *postal.ZoneInfo) ([]models.ComparableProperty, error) {
	criteria := comparables.ZoneCriteria(zone)

	if v.store != nil {
		rows, err := v.store.GetListingsByZone(zone)
		if err != nil {
			return nil, err
		}
		candidates := listings.ParseAll(rows)
		for i := range candidates {
			candidates[i].Distrito = zinfo.Distrito
		}
		return comparables.Filter(candidates, target, criteria), nil
	}

	info := &models.PostalCodeInfo{
		PostalCode: target.PostalCode,
		Localidad:  zinfo.Localidad,
		Distrito:   zinfo.Distrito,
	}
	candidates := v.generator.GenerateSet(target, zinfo.BasePriceM2, info, v.cfg.Valuation.ComparableCount)
	for i := range candidates {
		candidates[i].Zona = zone
	}
	return comparables.Filter(candidates, target, criteria), nil
}

// valuate runs the delegated strategy with local fallback and finalizes the
// result envelope.
func (v *Valuator) valuate(ctx context.Context, target models.PropertyInfo, comps []models.ComparableProperty) *models.ValuationResult {
	result, err := v.strategy.Valuate(ctx, target, comps)
	if err != nil {
		v.logger.WithError(err).Warn("Delegated valuation failed, using deterministic fallback")
		result, _ = v.fallback.Valuate(ctx, target, comps)
	}

	if result.IsMissingData() || result.IsNoComparables() {
		return result
	}

	return v.finalize(result, comps)
}

// finalize attaches the locally computed statistics, the featured
// comparables and the envelope fields.
func (v *Valuator) finalize(result *models.ValuationResult, comps []models.ComparableProperty) *models.ValuationResult {
	stats := ComputeStats(comps)
	result.Estadisticas = &stats

	featured := v.cfg.Valuation.FeaturedCount
	if featured > len(comps) {
		featured = len(comps)
	}
	result.Comparables = comps[:featured]

	result.FechaCalculo = v.now().Format(fechaFormat)
	if result.Metodologia == "" {
		result.Metodologia = Metodologia
	}
	result.AvisoLegal = AvisoLegal
	return result
}

// checkAddressDistance geocodes the free-text address, when present, and
// logs when it lands far from the postal code's centroid. Purely
// diagnostic: a mismatch does not block the valuation.
func (v *Valuator) checkAddressDistance(target models.PropertyInfo, info *models.PostalCodeInfo) {
	if v.geocoder == nil || target.Direccion == "" {
		return
	}
	centerLat, centerLon, ok := postal.CenterOf(info)
	if !ok {
		return
	}
	lat, lon, err := v.geocoder.GeocodeAddress(target.Direccion, target.PostalCode, target.Localidad)
	if err != nil {
		v.logger.WithError(err).WithField("direccion", target.Direccion).Debug("Could not geocode target address")
		return
	}
	distance := postal.DistanceMeters(centerLat, centerLon, lat, lon)
	if distance > 2000 {
		v.logger.WithFields(logrus.Fields{
			"direccion":     target.Direccion,
			"codigo_postal": target.PostalCode,
			"distancia_m":   distance,
		}).Warn("Address resolves far from the postal code centroid")
	}
}

// requiredFields names the target fields the pipeline cannot run without.
func requiredFields(target models.PropertyInfo) []string {
	var missing []string
	if target.Superficie <= 0 {
		missing = append(missing, "superficie_m2")
	}
	if target.PostalCode == "" {
		missing = append(missing, "codigo_postal")
	}
	return missing
}
