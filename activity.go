package apub

// object lets Activity embed the base entity under a name that leaves the
// Object field free for the thing the activity acts upon.
type object = Object

// Activity is an Object augmented with who did what to what: the actor,
// the acted-upon object, and the optional target and origin of the action.
// Each of those arrives embedded or as a bare reference, and the object may
// be absent entirely for kinds like Follow where the target carries the
// meaning.
type Activity struct {
	object

	Actor  List[Ref[Actor]]
	Object Ref[Object]
	Target Ref[Object]
	Origin Ref[Object]
}

var activityKeys = union(objectKeys, "actor", "object", "target", "origin")

// ExtractActivity extracts an Activity from a decoded value.
func ExtractActivity(v any) (*Activity, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	a := extractActivity(props, &ds)
	return a, ds, nil
}

func extractActivity(props map[string]any, ds *Diagnostics) *Activity {
	return &Activity{
		object: *extractObjectProps(props, activityKeys, ds),
		Actor:  actorRefList(props, "actor", ds),
		Object: optRef(props, "object", "object or URL", objectEmbed, ds),
		Target: optRef(props, "target", "object or URL", objectEmbed, ds),
		Origin: optRef(props, "origin", "object or URL", objectEmbed, ds),
	}
}

// ActorID returns the identifier of the actor to attribute the activity
// to, preferring person-like entries when several actors are named.
func (a *Activity) ActorID() (string, bool) {
	return PrimaryActorID(a.Actor)
}

// ObjectID returns the identifier of the acted-upon object, whether it
// arrived embedded or as a reference.
func (a *Activity) ObjectID() (string, bool) {
	id := a.Object.ID()
	return id, id != ""
}

// ObjectType returns the type tag of the acted-upon object. It reports
// false when the object is absent, is a bare reference, or carries no type.
func (a *Activity) ObjectType() (string, bool) {
	obj, ok := a.Object.Embedded()
	if !ok {
		return "", false
	}
	return obj.Type.First()
}

func (a *Activity) AsMap() map[string]any {
	m := a.object.baseMap()
	if a.Actor.IsSet() {
		m["actor"] = listAsAny(a.Actor, func(r Ref[Actor]) any {
			return refAsAny(r, (*Actor).AsMap)
		})
	}
	if a.Object.IsSet() {
		m["object"] = refAsAny(a.Object, (*Object).AsMap)
	}
	if a.Target.IsSet() {
		m["target"] = refAsAny(a.Target, (*Object).AsMap)
	}
	if a.Origin.IsSet() {
		m["origin"] = refAsAny(a.Origin, (*Object).AsMap)
	}
	return m
}
