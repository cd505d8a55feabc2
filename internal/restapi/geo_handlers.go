package restapi

import (
	"net/http"

	"geoproximity.onebusaway.org/internal/geo"
	"geoproximity.onebusaway.org/internal/models"
	"geoproximity.onebusaway.org/internal/utils"
)

// parsePointPair reads lat1/lon1/lat2/lon2. On failure it has already sent
// the validation response and returns false.
func (api *RestAPI) parsePointPair(w http.ResponseWriter, r *http.Request) (geo.GeoPoint, geo.GeoPoint, bool) {
	queryParams := r.URL.Query()

	from, fieldErrors := utils.ParseRequiredPointParams(queryParams, "lat1", "lon1", nil)
	to, fieldErrors := utils.ParseRequiredPointParams(queryParams, "lat2", "lon2", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return geo.GeoPoint{}, geo.GeoPoint{}, false
	}
	return from, to, true
}

func (api *RestAPI) distanceHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.parsePointPair(w, r)
	if !ok {
		return
	}

	entry := models.DistanceModel{Distance: geo.CalculateDistance(from, to)}
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}

func (api *RestAPI) orientationHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.parsePointPair(w, r)
	if !ok {
		return
	}

	entry := models.OrientationModel{Orientation: geo.CalculateOrientation(from, to)}
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}

func (api *RestAPI) orientationSymbolHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.parsePointPair(w, r)
	if !ok {
		return
	}

	direction := api.Calculator.OrientationSymbol(from, to)
	api.Metrics.ObserveDirection(direction.String())

	entry := models.NewOrientationSymbolModel(direction)
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}

func (api *RestAPI) closenessHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.parsePointPair(w, r)
	if !ok {
		return
	}

	entry := models.ClosenessModel{Percent: geo.CalculateGeoClosingPercent(from, to)}
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}

func (api *RestAPI) relationHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := api.parsePointPair(w, r)
	if !ok {
		return
	}

	relation := api.Calculator.Relate(from, to)
	api.Metrics.ObserveDirection(relation.Direction.String())

	entry := models.NewRelationModel(relation)
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
