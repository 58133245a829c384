package sqlinline

// Calendar windows are evaluated on the database clock so all dashboards see
// the same month/day boundaries regardless of API host timezone.
const QSubmissionSummary = `--sql c5d6e7f8-a9b0-4c1d-8e2f-3a4b5c6d7e8f
select count(*),
       count(*) filter (where status = 'completed'),
       count(*) filter (where status = 'pending'),
       coalesce(sum(amount) filter (where status = 'completed'), 0)::text,
       count(*) filter (where date_trunc('month', submitted_at) = date_trunc('month', now())),
       coalesce(sum(amount) filter (where status = 'completed' and date_trunc('month', submitted_at) = date_trunc('month', now())), 0)::text,
       count(*) filter (where submitted_at::date = current_date),
       coalesce(sum(amount) filter (where status = 'completed' and submitted_at::date = current_date), 0)::text,
       count(*) filter (where submitted_at >= now() - interval '7 days')
from submissions;
`
