package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

const mongoOpTimeout = 5 * time.Second

// MongoBackend persiste el mismo documento de estado repartido en tres
// colecciones más una de metadatos. Alternativa al backend de archivo para
// despliegues que ya tienen MongoDB (storeDriver=mongo).
type MongoBackend struct {
	client    *mongo.Client
	giveaways *mongo.Collection
	users     *mongo.Collection
	tickets   *mongo.Collection
	meta      *mongo.Collection
}

type userDoc struct {
	ID                 string `bson:"_id"`
	models.UserAccount `bson:",inline"`
}

type ticketDoc struct {
	ID                  string `bson:"_id"`
	models.TicketRecord `bson:",inline"`
}

type metaDoc struct {
	ID                 string                         `bson:"_id"`
	Version            int                            `bson:"version"`
	Invites            map[string]*models.InviteStats `bson:"invites"`
	StaffMessageID     string                         `bson:"staffMessageId,omitempty"`
	ChestShopMessageID string                         `bson:"chestShopMessageId,omitempty"`
}

// NewMongoBackend conecta y verifica la conexión antes de devolver el backend.
func NewMongoBackend(mongoURL, dbName string) (*MongoBackend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(mongoOpTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoBackend{
		client:    client,
		giveaways: db.Collection("giveaways"),
		users:     db.Collection("users"),
		tickets:   db.Collection("tickets"),
		meta:      db.Collection("meta"),
	}, nil
}

// Load reconstruye el documento de estado completo desde las colecciones.
func (m *MongoBackend) Load() (*models.State, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*mongoOpTimeout)
	defer cancel()

	state := models.NewState()

	cur, err := m.giveaways.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for cur.Next(ctx) {
		var g models.GiveawayRecord
		if err := cur.Decode(&g); err != nil {
			continue
		}
		state.Giveaways[g.MessageID] = &g
	}
	cur.Close(ctx)

	cur, err = m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for cur.Next(ctx) {
		var d userDoc
		if err := cur.Decode(&d); err != nil {
			continue
		}
		u := d.UserAccount
		state.Users[d.ID] = &u
	}
	cur.Close(ctx)

	cur, err = m.tickets.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	for cur.Next(ctx) {
		var d ticketDoc
		if err := cur.Decode(&d); err != nil {
			continue
		}
		t := d.TicketRecord
		state.Tickets[d.ID] = &t
	}
	cur.Close(ctx)

	var meta metaDoc
	err = m.meta.FindOne(ctx, bson.M{"_id": "state"}).Decode(&meta)
	if err == nil {
		state.Invites = meta.Invites
		state.StaffMessageID = meta.StaffMessageID
		state.ChestShopMessageID = meta.ChestShopMessageID
		if meta.Version > 0 {
			state.Version = meta.Version
		}
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	return state, nil
}

// Save vuelca cada registro con upserts. Los tickets que ya no existen en
// el estado se eliminan (el registro muere con su canal); sorteos y
// usuarios nunca se borran.
func (m *MongoBackend) Save(state *models.State) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*mongoOpTimeout)
	defer cancel()

	upsert := options.Replace().SetUpsert(true)

	for id, g := range state.Giveaways {
		if _, err := m.giveaways.ReplaceOne(ctx, bson.M{"_id": id}, g, upsert); err != nil {
			return err
		}
	}
	for id, u := range state.Users {
		doc := userDoc{ID: id, UserAccount: *u}
		if _, err := m.users.ReplaceOne(ctx, bson.M{"_id": id}, doc, upsert); err != nil {
			return err
		}
	}
	ticketIDs := make([]string, 0, len(state.Tickets))
	for id, t := range state.Tickets {
		ticketIDs = append(ticketIDs, id)
		doc := ticketDoc{ID: id, TicketRecord: *t}
		if _, err := m.tickets.ReplaceOne(ctx, bson.M{"_id": id}, doc, upsert); err != nil {
			return err
		}
	}
	if _, err := m.tickets.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": ticketIDs}}); err != nil {
		return err
	}

	meta := metaDoc{
		ID:                 "state",
		Version:            state.Version,
		Invites:            state.Invites,
		StaffMessageID:     state.StaffMessageID,
		ChestShopMessageID: state.ChestShopMessageID,
	}
	_, err := m.meta.ReplaceOne(ctx, bson.M{"_id": "state"}, meta, upsert)
	return err
}

// Close desconecta el cliente.
func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
