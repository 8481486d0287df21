package shopRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestVisibleFilterKeepsMissingField(t *testing.T) {
	// $ne false matches documents without isActive as well as isActive: true.
	assert.Equal(t, bson.M{"isActive": bson.M{"$ne": false}}, VisibleFilter())
}
