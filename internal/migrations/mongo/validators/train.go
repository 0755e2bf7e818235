package validators

import "go.mongodb.org/mongo-driver/bson"

var TrainValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"origin",
			"destination",
			"base_fare_paise",
			"total_seats",
			"available_seats",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 4,
				"maxLength": 12,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"origin": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 50,
			},

			"destination": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 50,
			},

			"departure": bson.M{
				"bsonType": "string",
			},

			"arrival": bson.M{
				"bsonType": "string",
			},

			"base_fare_paise": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"total_seats": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"available_seats": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},
		},
	},
}
