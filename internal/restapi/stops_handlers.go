package restapi

import (
	"errors"
	"net/http"

	gtfsmanager "geoproximity.onebusaway.org/internal/gtfs"
	"geoproximity.onebusaway.org/internal/models"
	"geoproximity.onebusaway.org/internal/utils"

	"github.com/jamespfennell/gtfs"
)

const defaultMaxCount = 100

func (api *RestAPI) stopsNearbyHandler(w http.ResponseWriter, r *http.Request) {
	if !api.HasStops() {
		api.stopsUnavailableResponse(w, r)
		return
	}

	queryParams := r.URL.Query()

	point, fieldErrors := utils.ParseRequiredPointParams(queryParams, "lat", "lon", nil)
	radius, fieldErrors := utils.ParseFloatParam(queryParams, "radius", fieldErrors)
	maxCount, fieldErrors := utils.ParseIntParam(queryParams, "maxCount", defaultMaxCount, fieldErrors)

	if len(fieldErrors["radius"]) == 0 {
		if err := utils.ValidateRadius(radius); err != nil {
			fieldErrors["radius"] = append(fieldErrors["radius"], err.Error())
		}
	}
	if len(fieldErrors["maxCount"]) == 0 {
		if err := utils.ValidateMaxCount(maxCount); err != nil {
			fieldErrors["maxCount"] = append(fieldErrors["maxCount"], err.Error())
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	nearby, limitExceeded, err := api.GtfsManager.StopsNear(ctx, point, radius, maxCount)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.NearbyStop, 0, len(nearby))
	for _, n := range nearby {
		results = append(results, models.NearbyStop{
			Stop:     stopModel(n.Stop),
			Relation: models.NewRelationModel(n.Relation),
		})
	}

	response := models.NewListResponseWithRange(results, models.NewEmptyReferences(), limitExceeded, len(results) == 0)
	api.sendResponse(w, r, response)
}

func (api *RestAPI) relationToStopHandler(w http.ResponseWriter, r *http.Request) {
	if !api.HasStops() {
		api.stopsUnavailableResponse(w, r)
		return
	}

	stopID := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(stopID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	point, fieldErrors := utils.ParseRequiredPointParams(r.URL.Query(), "lat", "lon", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := api.GtfsManager.RelationToStop(point, stopID)
	if errors.Is(err, gtfsmanager.ErrStopNotFound) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.Metrics.ObserveDirection(result.Relation.Direction.String())

	references := models.NewEmptyReferences()
	references.Stops = append(references.Stops, stopModel(result.Stop))

	api.sendResponse(w, r, models.NewEntryResponse(models.NewRelationModel(result.Relation), references))
}

func stopModel(stop gtfs.Stop) models.Stop {
	var lat, lon float64
	if stop.Latitude != nil {
		lat = *stop.Latitude
	}
	if stop.Longitude != nil {
		lon = *stop.Longitude
	}

	parent := ""
	if stop.Parent != nil {
		parent = stop.Parent.Id
	}

	return models.NewStop(stop.Code, stop.Id, stop.Name, parent, mapWheelchairBoarding(stop.WheelchairBoarding), lat, lon)
}

func mapWheelchairBoarding(wheelchairBoarding gtfs.WheelchairBoarding) string {
	switch wheelchairBoarding {
	case gtfs.WheelchairBoarding_Possible:
		return models.WheelchairAccessible
	case gtfs.WheelchairBoarding_NotPossible:
		return models.WheelchairNotAccessible
	default:
		return models.UnknownValue
	}
}
