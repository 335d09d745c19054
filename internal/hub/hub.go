package hub

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"nutritrack/internal/pantry"
	"nutritrack/internal/plan"
	"nutritrack/internal/profile"
)

// Storage is the persistence collaborator the hub hydrates from and flushes
// to. A missing key is (value="", ok=false, err=nil). It is only called at
// construction and on Set, never mid-pipeline.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Key identifies one canonical state field held by the hub.
type Key string

const (
	KeyUserProfile    Key = "userProfile"
	KeyMealPlans      Key = "mealPlans"
	KeyPantryItems    Key = "pantryItems"
	KeyNutritionGoals Key = "nutritionGoals"
	KeyPreferences    Key = "preferences"
)

// allKeys is the hydration and reset order.
var allKeys = []Key{KeyUserProfile, KeyMealPlans, KeyPantryItems, KeyNutritionGoals, KeyPreferences}

// Event is an enumerated event name. Using a closed type instead of free
// strings makes a misspelled subscription a compile-time error.
type Event string

const (
	EventUserProfileUpdated    Event = "userProfileUpdated"
	EventMealPlansUpdated      Event = "mealPlansUpdated"
	EventPantryItemsUpdated    Event = "pantryItemsUpdated"
	EventNutritionGoalsUpdated Event = "nutritionGoalsUpdated"
	EventPreferencesUpdated    Event = "preferencesUpdated"
	EventGroceryListGenerated  Event = "groceryListGenerated"
	EventCartUpdated           Event = "cartUpdated"
)

// UpdateEvent returns the "<key>Updated" event emitted when the key is set.
func UpdateEvent(k Key) Event {
	return Event(string(k) + "Updated")
}

// Handler receives the event payload. For "<key>Updated" events the payload
// is the new value of the key.
type Handler func(payload any)

// Hub is the canonical in-process store for session state, with synchronous
// publish/subscribe. One Hub instance per running application, injected into
// every consumer; it is not safe for concurrent use and does not need to be,
// because all access happens on the single application goroutine.
type Hub struct {
	storage  Storage
	logger   *slog.Logger
	volatile bool

	state    map[Key]any
	handlers map[Event][]Handler
}

// New builds a Hub and hydrates every key from storage. Absent keys get
// type-appropriate empty defaults. A storage failure is logged and the hub
// continues with volatile in-memory state for the session; New never fails.
func New(storage Storage, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Hub{
		storage:  storage,
		logger:   logger,
		state:    make(map[Key]any, len(allKeys)),
		handlers: make(map[Event][]Handler),
	}
	for _, k := range allKeys {
		h.state[k] = emptyValue(k)
	}
	h.hydrate()
	return h
}

func emptyValue(k Key) any {
	switch k {
	case KeyUserProfile:
		return profile.UserProfile{}
	case KeyMealPlans:
		return []plan.WeeklyPlan{}
	case KeyPantryItems:
		return []pantry.Item{}
	case KeyNutritionGoals:
		return profile.NutritionGoals{}
	case KeyPreferences:
		return profile.Preferences{}
	}
	return nil
}

func (h *Hub) hydrate() {
	if h.storage == nil {
		h.volatile = true
		return
	}
	for _, k := range allKeys {
		raw, ok, err := h.storage.Get(string(k))
		if err != nil {
			h.logger.Warn("state storage unavailable, continuing with volatile state",
				"key", string(k), "error", err)
			h.volatile = true
			return
		}
		if !ok {
			continue
		}
		if err := h.decodeInto(k, raw); err != nil {
			h.logger.Warn("discarding unreadable stored state", "key", string(k), "error", err)
		}
	}
}

func (h *Hub) decodeInto(k Key, raw string) error {
	switch k {
	case KeyUserProfile:
		var v profile.UserProfile
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		h.state[k] = v
	case KeyMealPlans:
		var v []plan.WeeklyPlan
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		h.state[k] = v
	case KeyPantryItems:
		var v []pantry.Item
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		h.state[k] = v
	case KeyNutritionGoals:
		var v profile.NutritionGoals
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		h.state[k] = v
	case KeyPreferences:
		var v profile.Preferences
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		h.state[k] = v
	default:
		return fmt.Errorf("unknown state key %q", k)
	}
	return nil
}

// Get returns the canonical value for key.
func (h *Hub) Get(key Key) any {
	return h.state[key]
}

// Set stores the canonical value, flushes it to storage and emits the key's
// update event synchronously. A storage write failure downgrades the session
// to volatile state; it never surfaces to the caller.
func (h *Hub) Set(key Key, value any) {
	h.state[key] = value
	if h.storage != nil && !h.volatile {
		raw, err := json.Marshal(value)
		if err != nil {
			h.logger.Warn("state value not serializable, kept in memory only",
				"key", string(key), "error", err)
		} else if err := h.storage.Set(string(key), string(raw)); err != nil {
			h.logger.Warn("state storage unavailable, continuing with volatile state",
				"key", string(key), "error", err)
			h.volatile = true
		}
	}
	h.Emit(UpdateEvent(key), value)
}

// On registers a handler for an event. Handlers run synchronously in
// registration order.
func (h *Hub) On(e Event, fn Handler) {
	h.handlers[e] = append(h.handlers[e], fn)
}

// Emit delivers payload to every handler registered for e, in registration
// order. A panicking handler is recovered and logged so it cannot block the
// handlers behind it.
func (h *Hub) Emit(e Event, payload any) {
	for _, fn := range h.handlers[e] {
		h.safeCall(e, fn, payload)
	}
}

func (h *Hub) safeCall(e Event, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("event handler panicked", "event", string(e), "panic", r)
		}
	}()
	fn(payload)
}

// Volatile reports whether the hub has fallen back to in-memory-only state.
func (h *Hub) Volatile() bool {
	return h.volatile
}

// Reset clears every key back to its empty default, flushing and emitting as
// a normal Set does. Used on logout and demo-mode toggles.
func (h *Hub) Reset() {
	for _, k := range allKeys {
		h.Set(k, emptyValue(k))
	}
}

// Typed accessors. The generic Get/Set pair remains the contract; these keep
// call sites honest about what lives under each key.

func (h *Hub) UserProfile() profile.UserProfile {
	v, _ := h.state[KeyUserProfile].(profile.UserProfile)
	return v
}

func (h *Hub) SetUserProfile(p profile.UserProfile) { h.Set(KeyUserProfile, p) }

func (h *Hub) MealPlans() []plan.WeeklyPlan {
	v, _ := h.state[KeyMealPlans].([]plan.WeeklyPlan)
	return v
}

func (h *Hub) SetMealPlans(plans []plan.WeeklyPlan) { h.Set(KeyMealPlans, plans) }

func (h *Hub) PantryItems() []pantry.Item {
	v, _ := h.state[KeyPantryItems].([]pantry.Item)
	return v
}

func (h *Hub) SetPantryItems(items []pantry.Item) { h.Set(KeyPantryItems, items) }

func (h *Hub) NutritionGoals() profile.NutritionGoals {
	v, _ := h.state[KeyNutritionGoals].(profile.NutritionGoals)
	return v
}

func (h *Hub) SetNutritionGoals(g profile.NutritionGoals) { h.Set(KeyNutritionGoals, g) }

func (h *Hub) Preferences() profile.Preferences {
	v, _ := h.state[KeyPreferences].(profile.Preferences)
	return v
}

func (h *Hub) SetPreferences(p profile.Preferences) { h.Set(KeyPreferences, p) }
