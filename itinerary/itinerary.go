package itinerary

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"sanchaari/db"
	"sanchaari/middleware"
	"sanchaari/models"
	"sanchaari/mq"
	"sanchaari/planner"
	"sanchaari/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Priorities  []string `json:"priorities"`
}

func (req createRequest) validate() string {
	if strings.TrimSpace(req.Destination) == "" {
		return "Destination is required"
	}
	if req.Days < planner.MinDays || req.Days > planner.MaxDays {
		return "Days must be between 1 and 30"
	}
	if len(req.Priorities) != 3 {
		return "Exactly three priorities are required"
	}
	return ""
}

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.Error(w, http.StatusBadRequest, msg)
		return
	}

	priorities := [3]string{req.Priorities[0], req.Priorities[1], req.Priorities[2]}
	itinerary := models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      middleware.RequestUserID(r),
		Destination: req.Destination,
		Days:        req.Days,
		Priorities:  priorities,
		Items:       planner.Generate(req.Destination, req.Days, priorities),
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := db.ItineraryCollection.InsertOne(r.Context(), itinerary); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-created", itinerary.ItineraryID, itinerary.UserID)
	utils.JSON(w, http.StatusCreated, itinerary)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.RequestUserID(r)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.ItineraryCollection.Find(r.Context(), bson.M{"userid": userID}, opts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	defer cursor.Close(r.Context())

	itineraries := []models.Itinerary{}
	if err := cursor.All(r.Context(), &itineraries); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.JSON(w, http.StatusOK, itineraries)
}

// findOwned fetches an itinerary and enforces the ownership check shared by
// the single-item handlers.
func findOwned(r *http.Request, itineraryID string) (models.Itinerary, int, string) {
	var itinerary models.Itinerary
	err := db.ItineraryCollection.FindOne(r.Context(), bson.M{"itineraryid": itineraryID}).Decode(&itinerary)
	if err == mongo.ErrNoDocuments {
		return itinerary, http.StatusNotFound, "Not found"
	}
	if err != nil {
		return itinerary, http.StatusInternalServerError, "Error fetching itinerary"
	}
	if itinerary.UserID != middleware.RequestUserID(r) {
		return itinerary, http.StatusForbidden, "Forbidden"
	}
	return itinerary, http.StatusOK, ""
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, status, msg := findOwned(r, ps.ByName("id"))
	if msg != "" {
		utils.Error(w, status, msg)
		return
	}
	utils.JSON(w, http.StatusOK, itinerary)
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, status, msg := findOwned(r, ps.ByName("id"))
	if msg != "" {
		utils.Error(w, status, msg)
		return
	}

	if _, err := db.ItineraryCollection.DeleteOne(r.Context(), bson.M{"itineraryid": itinerary.ItineraryID}); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}

	mq.Emit(r.Context(), "itinerary-deleted", itinerary.ItineraryID, itinerary.UserID)
	w.WriteHeader(http.StatusNoContent)
}
