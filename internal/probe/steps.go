package probe

import (
	"context"
	"fmt"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

// Demo schema conventions. These are enforced purely by the query text;
// the database itself carries no constraints for them.
const (
	// TaskID is the application-level identifier of the demo Task node.
	TaskID = "T1"

	StatusNew        = "New"
	StatusInProgress = "In Progress"

	// probeMarker tags every node this tool creates so cleanup never
	// touches foreign data.
	probeMarker = "probe"
)

const (
	cypherCleanup = `
		MATCH (n)
		WHERE (n:Task OR n:Person) AND n.` + probeMarker + ` = true
		DETACH DELETE n`

	cypherCreate = `
		CREATE (t:Task {
			id: $id, name: $name, status: $status,
			` + probeMarker + `: true, runId: $runId, createdAt: datetime()
		})
		RETURN t.name AS name`

	cypherRead = `
		MATCH (t:Task {id: $id, runId: $runId})
		RETURN t.name AS name, t.status AS status`

	cypherUpdate = `
		MATCH (t:Task {id: $id, runId: $runId})
		SET t.status = $status, t.updatedAt = datetime()
		RETURN t.status AS status`

	cypherExpand = `
		MATCH (t:Task {id: $id, runId: $runId})
		CREATE (p:Person {name: $owner, ` + probeMarker + `: true, runId: $runId})
		CREATE (t)-[:ASSIGNED_TO {since: datetime()}]->(p)
		RETURN p.name AS name`

	cypherVerify = `
		MATCH (t:Task {id: $id})-[:ASSIGNED_TO]->(p:Person)
		RETURN t.status AS status, t.runId AS runId, p.name AS owner`
)

// cleanup removes nodes left behind by earlier probe runs. Also reused as
// the teardown step when KeepData is false.
func (r *Runner) cleanup(ctx context.Context, session neoprobe.Session) (string, error) {
	summary, err := session.Write(ctx, cypherCleanup, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed %d nodes and %d relationships",
		summary.NodesDeleted, summary.RelationshipsDeleted), nil
}

// create writes the demo Task node and reads its name back from the
// RETURN clause.
func (r *Runner) create(ctx context.Context, session neoprobe.Session) (string, error) {
	rec, err := session.WriteSingle(ctx, cypherCreate, map[string]any{
		"id":     TaskID,
		"name":   r.config.TaskName,
		"status": StatusNew,
		"runId":  r.runID,
	})
	if err != nil {
		return "", err
	}

	name, err := stringValue(rec, "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Node created: %q", name), nil
}

// read fetches the Task back. Absence is surfaced as an explicit
// not-found result by the session; here, right after create, it is a
// failure.
func (r *Runner) read(ctx context.Context, session neoprobe.Session) (string, error) {
	rec, found, err := session.ReadSingle(ctx, cypherRead, map[string]any{
		"id":    TaskID,
		"runId": r.runID,
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("task %s from run %s: %w", TaskID, r.runID, neoprobe.ErrRecordNotFound)
	}

	name, err := stringValue(rec, "name")
	if err != nil {
		return "", err
	}
	status, err := stringValue(rec, "status")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Task: %q, Status: %s", name, status), nil
}

// update transitions the Task status and confirms the new value from the
// write transaction's RETURN clause.
func (r *Runner) update(ctx context.Context, session neoprobe.Session) (string, error) {
	rec, err := session.WriteSingle(ctx, cypherUpdate, map[string]any{
		"id":     TaskID,
		"runId":  r.runID,
		"status": StatusInProgress,
	})
	if err != nil {
		return "", err
	}

	status, err := stringValue(rec, "status")
	if err != nil {
		return "", err
	}
	if status != StatusInProgress {
		return "", fmt.Errorf("status is %q after update, expected %q", status, StatusInProgress)
	}
	return fmt.Sprintf("New Status: %s", status), nil
}

// expand grows the graph: a Person node plus an ASSIGNED_TO relationship
// from the Task.
func (r *Runner) expand(ctx context.Context, session neoprobe.Session) (string, error) {
	rec, err := session.WriteSingle(ctx, cypherExpand, map[string]any{
		"id":    TaskID,
		"runId": r.runID,
		"owner": r.config.OwnerName,
	})
	if err != nil {
		return "", err
	}

	name, err := stringValue(rec, "name")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Task assigned to %q", name), nil
}

// verify traverses the Task->Person path and checks that the status, the
// owner and the run tag all round-tripped.
func (r *Runner) verify(ctx context.Context, session neoprobe.Session) (string, error) {
	rec, found, err := session.ReadSingle(ctx, cypherVerify, map[string]any{
		"id": TaskID,
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("task %s with assignment: %w", TaskID, neoprobe.ErrRecordNotFound)
	}

	status, err := stringValue(rec, "status")
	if err != nil {
		return "", err
	}
	if status != StatusInProgress {
		return "", fmt.Errorf("verification found status %q, expected %q", status, StatusInProgress)
	}

	owner, err := stringValue(rec, "owner")
	if err != nil {
		return "", err
	}
	if owner != r.config.OwnerName {
		return "", fmt.Errorf("verification found owner %q, expected %q", owner, r.config.OwnerName)
	}

	runID, err := stringValue(rec, "runId")
	if err != nil {
		return "", err
	}
	if runID != r.runID {
		return "", fmt.Errorf("verification found run %s, expected %s", runID, r.runID)
	}

	return fmt.Sprintf("Status %q and owner %q confirmed", status, owner), nil
}
